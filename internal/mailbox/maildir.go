package mailbox

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mealtrace/mealtrace/internal/entity"
)

// MaildirSource reads exported .eml files from a directory. It is the
// offline counterpart of a live mailbox: messages are filtered by sender
// and received-after date, and the HTML part is preferred when a message
// is multipart.
type MaildirSource struct {
	dir          string
	senderFilter string
	log          *slog.Logger
}

func NewMaildirSource(dir, senderFilter string, logger *slog.Logger) *MaildirSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &MaildirSource{
		dir:          dir,
		senderFilter: strings.ToLower(senderFilter),
		log:          logger,
	}
}

func (s *MaildirSource) Fetch(ctx context.Context, since time.Time) ([]entity.RawMessage, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read maildir %s: %w", s.dir, err)
	}

	var out []entity.RawMessage
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".eml") {
			continue
		}

		path := filepath.Join(s.dir, e.Name())
		msg, err := s.readMessage(path)
		if err != nil {
			s.log.Warn("skipping unreadable message file", "path", path, "error", err)
			continue
		}
		if msg == nil {
			continue
		}
		if !since.IsZero() && !msg.ReceivedAt.After(since) {
			continue
		}
		out = append(out, *msg)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ReceivedAt.Before(out[j].ReceivedAt) })
	s.log.Info("mailbox fetch complete",
		"dir", s.dir,
		"messages", len(out),
	)
	return out, nil
}

func (s *MaildirSource) readMessage(path string) (*entity.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cErr := f.Close(); cErr != nil {
			s.log.Warn("message file close error", "path", path, "error", cErr)
		}
	}()

	msg, err := mail.ReadMessage(f)
	if err != nil {
		return nil, fmt.Errorf("parse message: %w", err)
	}

	if s.senderFilter != "" {
		from := strings.ToLower(msg.Header.Get("From"))
		if !strings.Contains(from, s.senderFilter) {
			return nil, nil
		}
	}

	receivedAt := time.Now()
	if t, err := msg.Header.Date(); err == nil {
		receivedAt = t
	}

	subject := decodeHeader(msg.Header.Get("Subject"))
	body, err := readBody(msg.Header.Get("Content-Type"), msg.Header.Get("Content-Transfer-Encoding"), msg.Body)
	if err != nil {
		return nil, err
	}

	id := msg.Header.Get("Message-ID")
	if id == "" {
		id = filepath.Base(path)
	}

	return &entity.RawMessage{
		ID:         strings.Trim(id, "<>"),
		Subject:    subject,
		Body:       body,
		ReceivedAt: receivedAt,
	}, nil
}

// readBody returns the HTML part of a multipart message when present,
// falling back to the first text part, then to the raw body.
func readBody(contentType, transferEncoding string, r io.Reader) (string, error) {
	if contentType == "" {
		raw, err := io.ReadAll(r)
		return string(raw), err
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		raw, readErr := io.ReadAll(r)
		if readErr != nil {
			return "", readErr
		}
		return string(raw), nil
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		raw, err := io.ReadAll(decodeTransfer(transferEncoding, r))
		return string(raw), err
	}

	mr := multipart.NewReader(r, params["boundary"])
	var textPart string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		partType, _, _ := mime.ParseMediaType(part.Header.Get("Content-Type"))
		raw, err := io.ReadAll(decodeTransfer(part.Header.Get("Content-Transfer-Encoding"), part))
		if err != nil {
			continue
		}
		switch partType {
		case "text/html":
			return string(raw), nil
		case "text/plain":
			if textPart == "" {
				textPart = string(raw)
			}
		}
	}
	if textPart != "" {
		return textPart, nil
	}
	return "", fmt.Errorf("no text part found")
}

func decodeTransfer(encoding string, r io.Reader) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	default:
		return r
	}
}

func decodeHeader(raw string) string {
	dec := new(mime.WordDecoder)
	out, err := dec.DecodeHeader(raw)
	if err != nil {
		return raw
	}
	return out
}

var _ Source = (*MaildirSource)(nil)
