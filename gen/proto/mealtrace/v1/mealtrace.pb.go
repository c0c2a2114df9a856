// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: mealtrace/v1/mealtrace.proto

package mealtracev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type SyncMailboxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserEmail     string                 `protobuf:"bytes,1,opt,name=user_email,json=userEmail,proto3" json:"user_email,omitempty"`
	AfterDate     string                 `protobuf:"bytes,2,opt,name=after_date,json=afterDate,proto3" json:"after_date,omitempty"` // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncMailboxRequest) Reset() {
	*x = SyncMailboxRequest{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncMailboxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncMailboxRequest) ProtoMessage() {}

func (x *SyncMailboxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncMailboxRequest.ProtoReflect.Descriptor instead.
func (*SyncMailboxRequest) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{0}
}

func (x *SyncMailboxRequest) GetUserEmail() string {
	if x != nil {
		return x.UserEmail
	}
	return ""
}

func (x *SyncMailboxRequest) GetAfterDate() string {
	if x != nil {
		return x.AfterDate
	}
	return ""
}

type SyncMailboxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fetched       int32                  `protobuf:"varint,1,opt,name=fetched,proto3" json:"fetched,omitempty"`
	Parsed        int32                  `protobuf:"varint,2,opt,name=parsed,proto3" json:"parsed,omitempty"`
	Duplicates    int32                  `protobuf:"varint,3,opt,name=duplicates,proto3" json:"duplicates,omitempty"`
	Excluded      int32                  `protobuf:"varint,4,opt,name=excluded,proto3" json:"excluded,omitempty"`
	NotBills      int32                  `protobuf:"varint,5,opt,name=not_bills,json=notBills,proto3" json:"not_bills,omitempty"`
	Unparseable   int32                  `protobuf:"varint,6,opt,name=unparseable,proto3" json:"unparseable,omitempty"`
	Failed        int32                  `protobuf:"varint,7,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncMailboxResponse) Reset() {
	*x = SyncMailboxResponse{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncMailboxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncMailboxResponse) ProtoMessage() {}

func (x *SyncMailboxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncMailboxResponse.ProtoReflect.Descriptor instead.
func (*SyncMailboxResponse) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{1}
}

func (x *SyncMailboxResponse) GetFetched() int32 {
	if x != nil {
		return x.Fetched
	}
	return 0
}

func (x *SyncMailboxResponse) GetParsed() int32 {
	if x != nil {
		return x.Parsed
	}
	return 0
}

func (x *SyncMailboxResponse) GetDuplicates() int32 {
	if x != nil {
		return x.Duplicates
	}
	return 0
}

func (x *SyncMailboxResponse) GetExcluded() int32 {
	if x != nil {
		return x.Excluded
	}
	return 0
}

func (x *SyncMailboxResponse) GetNotBills() int32 {
	if x != nil {
		return x.NotBills
	}
	return 0
}

func (x *SyncMailboxResponse) GetUnparseable() int32 {
	if x != nil {
		return x.Unparseable
	}
	return 0
}

func (x *SyncMailboxResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type Dish struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Quantity      int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     *float64               `protobuf:"fixed64,4,opt,name=unit_price,json=unitPrice,proto3,oneof" json:"unit_price,omitempty"`
	Calories      *float64               `protobuf:"fixed64,5,opt,name=calories,proto3,oneof" json:"calories,omitempty"` // quantity-weighted total
	IsEstimated   bool                   `protobuf:"varint,6,opt,name=is_estimated,json=isEstimated,proto3" json:"is_estimated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Dish) Reset() {
	*x = Dish{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Dish) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Dish) ProtoMessage() {}

func (x *Dish) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Dish.ProtoReflect.Descriptor instead.
func (*Dish) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{2}
}

func (x *Dish) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Dish) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Dish) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *Dish) GetUnitPrice() float64 {
	if x != nil && x.UnitPrice != nil {
		return *x.UnitPrice
	}
	return 0
}

func (x *Dish) GetCalories() float64 {
	if x != nil && x.Calories != nil {
		return *x.Calories
	}
	return 0
}

func (x *Dish) GetIsEstimated() bool {
	if x != nil {
		return x.IsEstimated
	}
	return false
}

type Order struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	RestaurantName string                 `protobuf:"bytes,2,opt,name=restaurant_name,json=restaurantName,proto3" json:"restaurant_name,omitempty"`
	OrderedAt      string                 `protobuf:"bytes,3,opt,name=ordered_at,json=orderedAt,proto3" json:"ordered_at,omitempty"` // RFC 3339
	HasTime        bool                   `protobuf:"varint,4,opt,name=has_time,json=hasTime,proto3" json:"has_time,omitempty"`      // false when the mail carried no order time
	TotalPrice     *float64               `protobuf:"fixed64,5,opt,name=total_price,json=totalPrice,proto3,oneof" json:"total_price,omitempty"`
	TotalCalories  *float64               `protobuf:"fixed64,6,opt,name=total_calories,json=totalCalories,proto3,oneof" json:"total_calories,omitempty"`
	HasEstimates   bool                   `protobuf:"varint,7,opt,name=has_estimates,json=hasEstimates,proto3" json:"has_estimates,omitempty"`
	Dishes         []*Dish                `protobuf:"bytes,8,rep,name=dishes,proto3" json:"dishes,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Order) Reset() {
	*x = Order{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Order) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Order) ProtoMessage() {}

func (x *Order) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Order.ProtoReflect.Descriptor instead.
func (*Order) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{3}
}

func (x *Order) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Order) GetRestaurantName() string {
	if x != nil {
		return x.RestaurantName
	}
	return ""
}

func (x *Order) GetOrderedAt() string {
	if x != nil {
		return x.OrderedAt
	}
	return ""
}

func (x *Order) GetHasTime() bool {
	if x != nil {
		return x.HasTime
	}
	return false
}

func (x *Order) GetTotalPrice() float64 {
	if x != nil && x.TotalPrice != nil {
		return *x.TotalPrice
	}
	return 0
}

func (x *Order) GetTotalCalories() float64 {
	if x != nil && x.TotalCalories != nil {
		return *x.TotalCalories
	}
	return 0
}

func (x *Order) GetHasEstimates() bool {
	if x != nil {
		return x.HasEstimates
	}
	return false
}

func (x *Order) GetDishes() []*Dish {
	if x != nil {
		return x.Dishes
	}
	return nil
}

type ListOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserEmail     string                 `protobuf:"bytes,1,opt,name=user_email,json=userEmail,proto3" json:"user_email,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersRequest) Reset() {
	*x = ListOrdersRequest{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersRequest) ProtoMessage() {}

func (x *ListOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersRequest.ProtoReflect.Descriptor instead.
func (*ListOrdersRequest) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{4}
}

func (x *ListOrdersRequest) GetUserEmail() string {
	if x != nil {
		return x.UserEmail
	}
	return ""
}

func (x *ListOrdersRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListOrdersRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Orders        []*Order               `protobuf:"bytes,1,rep,name=orders,proto3" json:"orders,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListOrdersResponse) Reset() {
	*x = ListOrdersResponse{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListOrdersResponse) ProtoMessage() {}

func (x *ListOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListOrdersResponse.ProtoReflect.Descriptor instead.
func (*ListOrdersResponse) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{5}
}

func (x *ListOrdersResponse) GetOrders() []*Order {
	if x != nil {
		return x.Orders
	}
	return nil
}

type GetHealthReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserEmail     string                 `protobuf:"bytes,1,opt,name=user_email,json=userEmail,proto3" json:"user_email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetHealthReportRequest) Reset() {
	*x = GetHealthReportRequest{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHealthReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHealthReportRequest) ProtoMessage() {}

func (x *GetHealthReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHealthReportRequest.ProtoReflect.Descriptor instead.
func (*GetHealthReportRequest) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{6}
}

func (x *GetHealthReportRequest) GetUserEmail() string {
	if x != nil {
		return x.UserEmail
	}
	return ""
}

type DailyScore struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Date          string                 `protobuf:"bytes,1,opt,name=date,proto3" json:"date,omitempty"` // YYYY-MM-DD
	Index         int32                  `protobuf:"varint,2,opt,name=index,proto3" json:"index,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DailyScore) Reset() {
	*x = DailyScore{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DailyScore) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DailyScore) ProtoMessage() {}

func (x *DailyScore) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DailyScore.ProtoReflect.Descriptor instead.
func (*DailyScore) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{7}
}

func (x *DailyScore) GetDate() string {
	if x != nil {
		return x.Date
	}
	return ""
}

func (x *DailyScore) GetIndex() int32 {
	if x != nil {
		return x.Index
	}
	return 0
}

type EatMoreOfItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Item          string                 `protobuf:"bytes,1,opt,name=item,proto3" json:"item,omitempty"`
	IsHealthy     bool                   `protobuf:"varint,2,opt,name=is_healthy,json=isHealthy,proto3" json:"is_healthy,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EatMoreOfItem) Reset() {
	*x = EatMoreOfItem{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EatMoreOfItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EatMoreOfItem) ProtoMessage() {}

func (x *EatMoreOfItem) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EatMoreOfItem.ProtoReflect.Descriptor instead.
func (*EatMoreOfItem) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{8}
}

func (x *EatMoreOfItem) GetItem() string {
	if x != nil {
		return x.Item
	}
	return ""
}

func (x *EatMoreOfItem) GetIsHealthy() bool {
	if x != nil {
		return x.IsHealthy
	}
	return false
}

type Narrative struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	OneLiner         string                 `protobuf:"bytes,1,opt,name=one_liner,json=oneLiner,proto3" json:"one_liner,omitempty"`
	EatMoreOf        []*EatMoreOfItem       `protobuf:"bytes,2,rep,name=eat_more_of,json=eatMoreOf,proto3" json:"eat_more_of,omitempty"`
	Lacking          []string               `protobuf:"bytes,3,rep,name=lacking,proto3" json:"lacking,omitempty"`
	MonthlyNarrative string                 `protobuf:"bytes,4,opt,name=monthly_narrative,json=monthlyNarrative,proto3" json:"monthly_narrative,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Narrative) Reset() {
	*x = Narrative{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Narrative) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Narrative) ProtoMessage() {}

func (x *Narrative) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Narrative.ProtoReflect.Descriptor instead.
func (*Narrative) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{9}
}

func (x *Narrative) GetOneLiner() string {
	if x != nil {
		return x.OneLiner
	}
	return ""
}

func (x *Narrative) GetEatMoreOf() []*EatMoreOfItem {
	if x != nil {
		return x.EatMoreOf
	}
	return nil
}

func (x *Narrative) GetLacking() []string {
	if x != nil {
		return x.Lacking
	}
	return nil
}

func (x *Narrative) GetMonthlyNarrative() string {
	if x != nil {
		return x.MonthlyNarrative
	}
	return ""
}

type GetHealthReportResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	HealthIndex       int32                  `protobuf:"varint,1,opt,name=health_index,json=healthIndex,proto3" json:"health_index,omitempty"`
	CategoryBreakdown map[string]float64     `protobuf:"bytes,2,rep,name=category_breakdown,json=categoryBreakdown,proto3" json:"category_breakdown,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"` // category letter -> weighted count
	DailyScores       []*DailyScore          `protobuf:"bytes,3,rep,name=daily_scores,json=dailyScores,proto3" json:"daily_scores,omitempty"`
	Narrative         *Narrative             `protobuf:"bytes,4,opt,name=narrative,proto3,oneof" json:"narrative,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetHealthReportResponse) Reset() {
	*x = GetHealthReportResponse{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetHealthReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetHealthReportResponse) ProtoMessage() {}

func (x *GetHealthReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetHealthReportResponse.ProtoReflect.Descriptor instead.
func (*GetHealthReportResponse) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{10}
}

func (x *GetHealthReportResponse) GetHealthIndex() int32 {
	if x != nil {
		return x.HealthIndex
	}
	return 0
}

func (x *GetHealthReportResponse) GetCategoryBreakdown() map[string]float64 {
	if x != nil {
		return x.CategoryBreakdown
	}
	return nil
}

func (x *GetHealthReportResponse) GetDailyScores() []*DailyScore {
	if x != nil {
		return x.DailyScores
	}
	return nil
}

func (x *GetHealthReportResponse) GetNarrative() *Narrative {
	if x != nil {
		return x.Narrative
	}
	return nil
}

type ExportOrdersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserEmail     string                 `protobuf:"bytes,1,opt,name=user_email,json=userEmail,proto3" json:"user_email,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOrdersRequest) Reset() {
	*x = ExportOrdersRequest{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOrdersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOrdersRequest) ProtoMessage() {}

func (x *ExportOrdersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOrdersRequest.ProtoReflect.Descriptor instead.
func (*ExportOrdersRequest) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{11}
}

func (x *ExportOrdersRequest) GetUserEmail() string {
	if x != nil {
		return x.UserEmail
	}
	return ""
}

func (x *ExportOrdersRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportOrdersRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportOrdersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportOrdersResponse) Reset() {
	*x = ExportOrdersResponse{}
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportOrdersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportOrdersResponse) ProtoMessage() {}

func (x *ExportOrdersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_mealtrace_v1_mealtrace_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportOrdersResponse.ProtoReflect.Descriptor instead.
func (*ExportOrdersResponse) Descriptor() ([]byte, []int) {
	return file_mealtrace_v1_mealtrace_proto_rawDescGZIP(), []int{12}
}

func (x *ExportOrdersResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_mealtrace_v1_mealtrace_proto protoreflect.FileDescriptor

const file_mealtrace_v1_mealtrace_proto_rawDesc = "" +
	"\n" +
	"\x1cmealtrace/v1/mealtrace.proto\x12\fmealtrace.v1\"R\n" +
	"\x12SyncMailboxRequest\x12\x1d\n" +
	"\n" +
	"user_email\x18\x01 \x01(\tR\tuserEmail\x12\x1d\n" +
	"\n" +
	"after_date\x18\x02 \x01(\tR\tafterDate\"\xda\x01\n" +
	"\x13SyncMailboxResponse\x12\x18\n" +
	"\afetched\x18\x01 \x01(\x05R\afetched\x12\x16\n" +
	"\x06parsed\x18\x02 \x01(\x05R\x06parsed\x12\x1e\n" +
	"\n" +
	"duplicates\x18\x03 \x01(\x05R\n" +
	"duplicates\x12\x1a\n" +
	"\bexcluded\x18\x04 \x01(\x05R\bexcluded\x12\x1b\n" +
	"\tnot_bills\x18\x05 \x01(\x05R\bnotBills\x12 \n" +
	"\vunparseable\x18\x06 \x01(\x05R\vunparseable\x12\x16\n" +
	"\x06failed\x18\a \x01(\x05R\x06failed\"\xca\x01\n" +
	"\x04Dish\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12\"\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\x01H\x00R\tunitPrice\x88\x01\x01\x12\x1f\n" +
	"\bcalories\x18\x05 \x01(\x01H\x01R\bcalories\x88\x01\x01\x12!\n" +
	"\fis_estimated\x18\x06 \x01(\bR\visEstimatedB\r\n" +
	"\v_unit_priceB\v\n" +
	"\t_calories\"\xc0\x02\n" +
	"\x05Order\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12'\n" +
	"\x0frestaurant_name\x18\x02 \x01(\tR\x0erestaurantName\x12\x1d\n" +
	"\n" +
	"ordered_at\x18\x03 \x01(\tR\torderedAt\x12\x19\n" +
	"\bhas_time\x18\x04 \x01(\bR\ahasTime\x12$\n" +
	"\vtotal_price\x18\x05 \x01(\x01H\x00R\n" +
	"totalPrice\x88\x01\x01\x12*\n" +
	"\x0etotal_calories\x18\x06 \x01(\x01H\x01R\rtotalCalories\x88\x01\x01\x12#\n" +
	"\rhas_estimates\x18\a \x01(\bR\fhasEstimates\x12*\n" +
	"\x06dishes\x18\b \x03(\v2\x12.mealtrace.v1.DishR\x06dishesB\x0e\n" +
	"\f_total_priceB\x11\n" +
	"\x0f_total_calories\"h\n" +
	"\x11ListOrdersRequest\x12\x1d\n" +
	"\n" +
	"user_email\x18\x01 \x01(\tR\tuserEmail\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"A\n" +
	"\x12ListOrdersResponse\x12+\n" +
	"\x06orders\x18\x01 \x03(\v2\x13.mealtrace.v1.OrderR\x06orders\"7\n" +
	"\x16GetHealthReportRequest\x12\x1d\n" +
	"\n" +
	"user_email\x18\x01 \x01(\tR\tuserEmail\"6\n" +
	"\n" +
	"DailyScore\x12\x12\n" +
	"\x04date\x18\x01 \x01(\tR\x04date\x12\x14\n" +
	"\x05index\x18\x02 \x01(\x05R\x05index\"B\n" +
	"\rEatMoreOfItem\x12\x12\n" +
	"\x04item\x18\x01 \x01(\tR\x04item\x12\x1d\n" +
	"\n" +
	"is_healthy\x18\x02 \x01(\bR\tisHealthy\"\xac\x01\n" +
	"\tNarrative\x12\x1b\n" +
	"\tone_liner\x18\x01 \x01(\tR\boneLiner\x12;\n" +
	"\veat_more_of\x18\x02 \x03(\v2\x1b.mealtrace.v1.EatMoreOfItemR\teatMoreOf\x12\x18\n" +
	"\alacking\x18\x03 \x03(\tR\alacking\x12+\n" +
	"\x11monthly_narrative\x18\x04 \x01(\tR\x10monthlyNarrative\"\xf6\x02\n" +
	"\x17GetHealthReportResponse\x12!\n" +
	"\fhealth_index\x18\x01 \x01(\x05R\vhealthIndex\x12k\n" +
	"\x12category_breakdown\x18\x02 \x03(\v2<.mealtrace.v1.GetHealthReportResponse.CategoryBreakdownEntryR\x11categoryBreakdown\x12;\n" +
	"\fdaily_scores\x18\x03 \x03(\v2\x18.mealtrace.v1.DailyScoreR\vdailyScores\x12:\n" +
	"\tnarrative\x18\x04 \x01(\v2\x17.mealtrace.v1.NarrativeH\x00R\tnarrative\x88\x01\x01\x1aD\n" +
	"\x16CategoryBreakdownEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01B\f\n" +
	"\n" +
	"_narrative\"j\n" +
	"\x13ExportOrdersRequest\x12\x1d\n" +
	"\n" +
	"user_email\x18\x01 \x01(\tR\tuserEmail\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"*\n" +
	"\x14ExportOrdersResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xee\x02\n" +
	"\x10MealtraceService\x12R\n" +
	"\vSyncMailbox\x12 .mealtrace.v1.SyncMailboxRequest\x1a!.mealtrace.v1.SyncMailboxResponse\x12O\n" +
	"\n" +
	"ListOrders\x12\x1f.mealtrace.v1.ListOrdersRequest\x1a .mealtrace.v1.ListOrdersResponse\x12^\n" +
	"\x0fGetHealthReport\x12$.mealtrace.v1.GetHealthReportRequest\x1a%.mealtrace.v1.GetHealthReportResponse\x12U\n" +
	"\fExportOrders\x12!.mealtrace.v1.ExportOrdersRequest\x1a\".mealtrace.v1.ExportOrdersResponseBCZAgithub.com/mealtrace/mealtrace/gen/proto/mealtrace/v1;mealtracev1b\x06proto3"

var (
	file_mealtrace_v1_mealtrace_proto_rawDescOnce sync.Once
	file_mealtrace_v1_mealtrace_proto_rawDescData []byte
)

func file_mealtrace_v1_mealtrace_proto_rawDescGZIP() []byte {
	file_mealtrace_v1_mealtrace_proto_rawDescOnce.Do(func() {
		file_mealtrace_v1_mealtrace_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_mealtrace_v1_mealtrace_proto_rawDesc), len(file_mealtrace_v1_mealtrace_proto_rawDesc)))
	})
	return file_mealtrace_v1_mealtrace_proto_rawDescData
}

var file_mealtrace_v1_mealtrace_proto_msgTypes = make([]protoimpl.MessageInfo, 14)
var file_mealtrace_v1_mealtrace_proto_goTypes = []any{
	(*SyncMailboxRequest)(nil),      // 0: mealtrace.v1.SyncMailboxRequest
	(*SyncMailboxResponse)(nil),     // 1: mealtrace.v1.SyncMailboxResponse
	(*Dish)(nil),                    // 2: mealtrace.v1.Dish
	(*Order)(nil),                   // 3: mealtrace.v1.Order
	(*ListOrdersRequest)(nil),       // 4: mealtrace.v1.ListOrdersRequest
	(*ListOrdersResponse)(nil),      // 5: mealtrace.v1.ListOrdersResponse
	(*GetHealthReportRequest)(nil),  // 6: mealtrace.v1.GetHealthReportRequest
	(*DailyScore)(nil),              // 7: mealtrace.v1.DailyScore
	(*EatMoreOfItem)(nil),           // 8: mealtrace.v1.EatMoreOfItem
	(*Narrative)(nil),               // 9: mealtrace.v1.Narrative
	(*GetHealthReportResponse)(nil), // 10: mealtrace.v1.GetHealthReportResponse
	(*ExportOrdersRequest)(nil),     // 11: mealtrace.v1.ExportOrdersRequest
	(*ExportOrdersResponse)(nil),    // 12: mealtrace.v1.ExportOrdersResponse
	nil,                             // 13: mealtrace.v1.GetHealthReportResponse.CategoryBreakdownEntry
}
var file_mealtrace_v1_mealtrace_proto_depIdxs = []int32{
	2,  // 0: mealtrace.v1.Order.dishes:type_name -> mealtrace.v1.Dish
	3,  // 1: mealtrace.v1.ListOrdersResponse.orders:type_name -> mealtrace.v1.Order
	8,  // 2: mealtrace.v1.Narrative.eat_more_of:type_name -> mealtrace.v1.EatMoreOfItem
	13, // 3: mealtrace.v1.GetHealthReportResponse.category_breakdown:type_name -> mealtrace.v1.GetHealthReportResponse.CategoryBreakdownEntry
	7,  // 4: mealtrace.v1.GetHealthReportResponse.daily_scores:type_name -> mealtrace.v1.DailyScore
	9,  // 5: mealtrace.v1.GetHealthReportResponse.narrative:type_name -> mealtrace.v1.Narrative
	0,  // 6: mealtrace.v1.MealtraceService.SyncMailbox:input_type -> mealtrace.v1.SyncMailboxRequest
	4,  // 7: mealtrace.v1.MealtraceService.ListOrders:input_type -> mealtrace.v1.ListOrdersRequest
	6,  // 8: mealtrace.v1.MealtraceService.GetHealthReport:input_type -> mealtrace.v1.GetHealthReportRequest
	11, // 9: mealtrace.v1.MealtraceService.ExportOrders:input_type -> mealtrace.v1.ExportOrdersRequest
	1,  // 10: mealtrace.v1.MealtraceService.SyncMailbox:output_type -> mealtrace.v1.SyncMailboxResponse
	5,  // 11: mealtrace.v1.MealtraceService.ListOrders:output_type -> mealtrace.v1.ListOrdersResponse
	10, // 12: mealtrace.v1.MealtraceService.GetHealthReport:output_type -> mealtrace.v1.GetHealthReportResponse
	12, // 13: mealtrace.v1.MealtraceService.ExportOrders:output_type -> mealtrace.v1.ExportOrdersResponse
	10, // [10:14] is the sub-list for method output_type
	6,  // [6:10] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_mealtrace_v1_mealtrace_proto_init() }
func file_mealtrace_v1_mealtrace_proto_init() {
	if File_mealtrace_v1_mealtrace_proto != nil {
		return
	}
	file_mealtrace_v1_mealtrace_proto_msgTypes[2].OneofWrappers = []any{}
	file_mealtrace_v1_mealtrace_proto_msgTypes[3].OneofWrappers = []any{}
	file_mealtrace_v1_mealtrace_proto_msgTypes[10].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_mealtrace_v1_mealtrace_proto_rawDesc), len(file_mealtrace_v1_mealtrace_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   14,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_mealtrace_v1_mealtrace_proto_goTypes,
		DependencyIndexes: file_mealtrace_v1_mealtrace_proto_depIdxs,
		MessageInfos:      file_mealtrace_v1_mealtrace_proto_msgTypes,
	}.Build()
	File_mealtrace_v1_mealtrace_proto = out.File
	file_mealtrace_v1_mealtrace_proto_goTypes = nil
	file_mealtrace_v1_mealtrace_proto_depIdxs = nil
}
