// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: moneybook/v1/moneybook.proto

package moneybookv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	MoneybookService_CreateRecord_FullMethodName          = "/moneybook.v1.MoneybookService/CreateRecord"
	MoneybookService_UpdateRecord_FullMethodName          = "/moneybook.v1.MoneybookService/UpdateRecord"
	MoneybookService_DeleteRecord_FullMethodName          = "/moneybook.v1.MoneybookService/DeleteRecord"
	MoneybookService_ListRecords_FullMethodName           = "/moneybook.v1.MoneybookService/ListRecords"
	MoneybookService_CreateTransfer_FullMethodName        = "/moneybook.v1.MoneybookService/CreateTransfer"
	MoneybookService_UpdateTransfer_FullMethodName        = "/moneybook.v1.MoneybookService/UpdateTransfer"
	MoneybookService_DeleteTransfer_FullMethodName        = "/moneybook.v1.MoneybookService/DeleteTransfer"
	MoneybookService_CreateScheduledRecord_FullMethodName = "/moneybook.v1.MoneybookService/CreateScheduledRecord"
	MoneybookService_PauseSchedule_FullMethodName         = "/moneybook.v1.MoneybookService/PauseSchedule"
	MoneybookService_ResumeSchedule_FullMethodName        = "/moneybook.v1.MoneybookService/ResumeSchedule"
	MoneybookService_ExecuteScheduleNow_FullMethodName    = "/moneybook.v1.MoneybookService/ExecuteScheduleNow"
	MoneybookService_ListSchedules_FullMethodName         = "/moneybook.v1.MoneybookService/ListSchedules"
	MoneybookService_ListGeneratedRecords_FullMethodName  = "/moneybook.v1.MoneybookService/ListGeneratedRecords"
	MoneybookService_CreateBook_FullMethodName            = "/moneybook.v1.MoneybookService/CreateBook"
	MoneybookService_CreateAsset_FullMethodName           = "/moneybook.v1.MoneybookService/CreateAsset"
	MoneybookService_GetAsset_FullMethodName              = "/moneybook.v1.MoneybookService/GetAsset"
	MoneybookService_OverrideAssetBalance_FullMethodName  = "/moneybook.v1.MoneybookService/OverrideAssetBalance"
)

// MoneybookServiceClient is the client API for MoneybookService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MoneybookService exposes the ledger core: record and transfer lifecycle,
// scheduled records, and the asset/book management around them.
// All monetary amounts cross the wire as fixed-point decimal strings.
type MoneybookServiceClient interface {
	// Records
	CreateRecord(ctx context.Context, in *CreateRecordRequest, opts ...grpc.CallOption) (*RecordResponse, error)
	UpdateRecord(ctx context.Context, in *UpdateRecordRequest, opts ...grpc.CallOption) (*RecordResponse, error)
	DeleteRecord(ctx context.Context, in *DeleteRecordRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error)
	// Transfers
	CreateTransfer(ctx context.Context, in *CreateTransferRequest, opts ...grpc.CallOption) (*TransferResponse, error)
	UpdateTransfer(ctx context.Context, in *UpdateTransferRequest, opts ...grpc.CallOption) (*TransferResponse, error)
	DeleteTransfer(ctx context.Context, in *DeleteTransferRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	// Scheduled records
	CreateScheduledRecord(ctx context.Context, in *CreateScheduledRecordRequest, opts ...grpc.CallOption) (*ScheduledRecordResponse, error)
	PauseSchedule(ctx context.Context, in *ScheduleActionRequest, opts ...grpc.CallOption) (*ScheduleActionResponse, error)
	ResumeSchedule(ctx context.Context, in *ScheduleActionRequest, opts ...grpc.CallOption) (*ScheduleActionResponse, error)
	ExecuteScheduleNow(ctx context.Context, in *ScheduleActionRequest, opts ...grpc.CallOption) (*RecordResponse, error)
	ListSchedules(ctx context.Context, in *ListSchedulesRequest, opts ...grpc.CallOption) (*ListSchedulesResponse, error)
	ListGeneratedRecords(ctx context.Context, in *ListGeneratedRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error)
	// Books and assets
	CreateBook(ctx context.Context, in *CreateBookRequest, opts ...grpc.CallOption) (*BookResponse, error)
	CreateAsset(ctx context.Context, in *CreateAssetRequest, opts ...grpc.CallOption) (*AssetResponse, error)
	GetAsset(ctx context.Context, in *GetAssetRequest, opts ...grpc.CallOption) (*AssetResponse, error)
	OverrideAssetBalance(ctx context.Context, in *OverrideAssetBalanceRequest, opts ...grpc.CallOption) (*AssetResponse, error)
}

type moneybookServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMoneybookServiceClient(cc grpc.ClientConnInterface) MoneybookServiceClient {
	return &moneybookServiceClient{cc}
}

func (c *moneybookServiceClient) CreateRecord(ctx context.Context, in *CreateRecordRequest, opts ...grpc.CallOption) (*RecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordResponse)
	err := c.cc.Invoke(ctx, MoneybookService_CreateRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) UpdateRecord(ctx context.Context, in *UpdateRecordRequest, opts ...grpc.CallOption) (*RecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordResponse)
	err := c.cc.Invoke(ctx, MoneybookService_UpdateRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) DeleteRecord(ctx context.Context, in *DeleteRecordRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteResponse)
	err := c.cc.Invoke(ctx, MoneybookService_DeleteRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) ListRecords(ctx context.Context, in *ListRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRecordsResponse)
	err := c.cc.Invoke(ctx, MoneybookService_ListRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) CreateTransfer(ctx context.Context, in *CreateTransferRequest, opts ...grpc.CallOption) (*TransferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransferResponse)
	err := c.cc.Invoke(ctx, MoneybookService_CreateTransfer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) UpdateTransfer(ctx context.Context, in *UpdateTransferRequest, opts ...grpc.CallOption) (*TransferResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TransferResponse)
	err := c.cc.Invoke(ctx, MoneybookService_UpdateTransfer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) DeleteTransfer(ctx context.Context, in *DeleteTransferRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteResponse)
	err := c.cc.Invoke(ctx, MoneybookService_DeleteTransfer_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) CreateScheduledRecord(ctx context.Context, in *CreateScheduledRecordRequest, opts ...grpc.CallOption) (*ScheduledRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScheduledRecordResponse)
	err := c.cc.Invoke(ctx, MoneybookService_CreateScheduledRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) PauseSchedule(ctx context.Context, in *ScheduleActionRequest, opts ...grpc.CallOption) (*ScheduleActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScheduleActionResponse)
	err := c.cc.Invoke(ctx, MoneybookService_PauseSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) ResumeSchedule(ctx context.Context, in *ScheduleActionRequest, opts ...grpc.CallOption) (*ScheduleActionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScheduleActionResponse)
	err := c.cc.Invoke(ctx, MoneybookService_ResumeSchedule_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) ExecuteScheduleNow(ctx context.Context, in *ScheduleActionRequest, opts ...grpc.CallOption) (*RecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecordResponse)
	err := c.cc.Invoke(ctx, MoneybookService_ExecuteScheduleNow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) ListSchedules(ctx context.Context, in *ListSchedulesRequest, opts ...grpc.CallOption) (*ListSchedulesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSchedulesResponse)
	err := c.cc.Invoke(ctx, MoneybookService_ListSchedules_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) ListGeneratedRecords(ctx context.Context, in *ListGeneratedRecordsRequest, opts ...grpc.CallOption) (*ListRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRecordsResponse)
	err := c.cc.Invoke(ctx, MoneybookService_ListGeneratedRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) CreateBook(ctx context.Context, in *CreateBookRequest, opts ...grpc.CallOption) (*BookResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BookResponse)
	err := c.cc.Invoke(ctx, MoneybookService_CreateBook_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) CreateAsset(ctx context.Context, in *CreateAssetRequest, opts ...grpc.CallOption) (*AssetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssetResponse)
	err := c.cc.Invoke(ctx, MoneybookService_CreateAsset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) GetAsset(ctx context.Context, in *GetAssetRequest, opts ...grpc.CallOption) (*AssetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssetResponse)
	err := c.cc.Invoke(ctx, MoneybookService_GetAsset_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *moneybookServiceClient) OverrideAssetBalance(ctx context.Context, in *OverrideAssetBalanceRequest, opts ...grpc.CallOption) (*AssetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AssetResponse)
	err := c.cc.Invoke(ctx, MoneybookService_OverrideAssetBalance_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MoneybookServiceServer is the server API for MoneybookService service.
// All implementations must embed UnimplementedMoneybookServiceServer
// for forward compatibility.
//
// MoneybookService exposes the ledger core: record and transfer lifecycle,
// scheduled records, and the asset/book management around them.
// All monetary amounts cross the wire as fixed-point decimal strings.
type MoneybookServiceServer interface {
	// Records
	CreateRecord(context.Context, *CreateRecordRequest) (*RecordResponse, error)
	UpdateRecord(context.Context, *UpdateRecordRequest) (*RecordResponse, error)
	DeleteRecord(context.Context, *DeleteRecordRequest) (*DeleteResponse, error)
	ListRecords(context.Context, *ListRecordsRequest) (*ListRecordsResponse, error)
	// Transfers
	CreateTransfer(context.Context, *CreateTransferRequest) (*TransferResponse, error)
	UpdateTransfer(context.Context, *UpdateTransferRequest) (*TransferResponse, error)
	DeleteTransfer(context.Context, *DeleteTransferRequest) (*DeleteResponse, error)
	// Scheduled records
	CreateScheduledRecord(context.Context, *CreateScheduledRecordRequest) (*ScheduledRecordResponse, error)
	PauseSchedule(context.Context, *ScheduleActionRequest) (*ScheduleActionResponse, error)
	ResumeSchedule(context.Context, *ScheduleActionRequest) (*ScheduleActionResponse, error)
	ExecuteScheduleNow(context.Context, *ScheduleActionRequest) (*RecordResponse, error)
	ListSchedules(context.Context, *ListSchedulesRequest) (*ListSchedulesResponse, error)
	ListGeneratedRecords(context.Context, *ListGeneratedRecordsRequest) (*ListRecordsResponse, error)
	// Books and assets
	CreateBook(context.Context, *CreateBookRequest) (*BookResponse, error)
	CreateAsset(context.Context, *CreateAssetRequest) (*AssetResponse, error)
	GetAsset(context.Context, *GetAssetRequest) (*AssetResponse, error)
	OverrideAssetBalance(context.Context, *OverrideAssetBalanceRequest) (*AssetResponse, error)
	mustEmbedUnimplementedMoneybookServiceServer()
}

// UnimplementedMoneybookServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMoneybookServiceServer struct{}

func (UnimplementedMoneybookServiceServer) CreateRecord(context.Context, *CreateRecordRequest) (*RecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateRecord not implemented")
}
func (UnimplementedMoneybookServiceServer) UpdateRecord(context.Context, *UpdateRecordRequest) (*RecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateRecord not implemented")
}
func (UnimplementedMoneybookServiceServer) DeleteRecord(context.Context, *DeleteRecordRequest) (*DeleteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteRecord not implemented")
}
func (UnimplementedMoneybookServiceServer) ListRecords(context.Context, *ListRecordsRequest) (*ListRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRecords not implemented")
}
func (UnimplementedMoneybookServiceServer) CreateTransfer(context.Context, *CreateTransferRequest) (*TransferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTransfer not implemented")
}
func (UnimplementedMoneybookServiceServer) UpdateTransfer(context.Context, *UpdateTransferRequest) (*TransferResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateTransfer not implemented")
}
func (UnimplementedMoneybookServiceServer) DeleteTransfer(context.Context, *DeleteTransferRequest) (*DeleteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteTransfer not implemented")
}
func (UnimplementedMoneybookServiceServer) CreateScheduledRecord(context.Context, *CreateScheduledRecordRequest) (*ScheduledRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateScheduledRecord not implemented")
}
func (UnimplementedMoneybookServiceServer) PauseSchedule(context.Context, *ScheduleActionRequest) (*ScheduleActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PauseSchedule not implemented")
}
func (UnimplementedMoneybookServiceServer) ResumeSchedule(context.Context, *ScheduleActionRequest) (*ScheduleActionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeSchedule not implemented")
}
func (UnimplementedMoneybookServiceServer) ExecuteScheduleNow(context.Context, *ScheduleActionRequest) (*RecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteScheduleNow not implemented")
}
func (UnimplementedMoneybookServiceServer) ListSchedules(context.Context, *ListSchedulesRequest) (*ListSchedulesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSchedules not implemented")
}
func (UnimplementedMoneybookServiceServer) ListGeneratedRecords(context.Context, *ListGeneratedRecordsRequest) (*ListRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListGeneratedRecords not implemented")
}
func (UnimplementedMoneybookServiceServer) CreateBook(context.Context, *CreateBookRequest) (*BookResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateBook not implemented")
}
func (UnimplementedMoneybookServiceServer) CreateAsset(context.Context, *CreateAssetRequest) (*AssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateAsset not implemented")
}
func (UnimplementedMoneybookServiceServer) GetAsset(context.Context, *GetAssetRequest) (*AssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAsset not implemented")
}
func (UnimplementedMoneybookServiceServer) OverrideAssetBalance(context.Context, *OverrideAssetBalanceRequest) (*AssetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method OverrideAssetBalance not implemented")
}
func (UnimplementedMoneybookServiceServer) mustEmbedUnimplementedMoneybookServiceServer() {}
func (UnimplementedMoneybookServiceServer) testEmbeddedByValue()                          {}

// UnsafeMoneybookServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MoneybookServiceServer will
// result in compilation errors.
type UnsafeMoneybookServiceServer interface {
	mustEmbedUnimplementedMoneybookServiceServer()
}

func RegisterMoneybookServiceServer(s grpc.ServiceRegistrar, srv MoneybookServiceServer) {
	// If the following call pancis, it indicates UnimplementedMoneybookServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MoneybookService_ServiceDesc, srv)
}

func _MoneybookService_CreateRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).CreateRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_CreateRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).CreateRecord(ctx, req.(*CreateRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_UpdateRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).UpdateRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_UpdateRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).UpdateRecord(ctx, req.(*UpdateRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_DeleteRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).DeleteRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_DeleteRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).DeleteRecord(ctx, req.(*DeleteRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_ListRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).ListRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_ListRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).ListRecords(ctx, req.(*ListRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_CreateTransfer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateTransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).CreateTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_CreateTransfer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).CreateTransfer(ctx, req.(*CreateTransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_UpdateTransfer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateTransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).UpdateTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_UpdateTransfer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).UpdateTransfer(ctx, req.(*UpdateTransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_DeleteTransfer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteTransferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).DeleteTransfer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_DeleteTransfer_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).DeleteTransfer(ctx, req.(*DeleteTransferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_CreateScheduledRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateScheduledRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).CreateScheduledRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_CreateScheduledRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).CreateScheduledRecord(ctx, req.(*CreateScheduledRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_PauseSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).PauseSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_PauseSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).PauseSchedule(ctx, req.(*ScheduleActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_ResumeSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).ResumeSchedule(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_ResumeSchedule_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).ResumeSchedule(ctx, req.(*ScheduleActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_ExecuteScheduleNow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScheduleActionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).ExecuteScheduleNow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_ExecuteScheduleNow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).ExecuteScheduleNow(ctx, req.(*ScheduleActionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_ListSchedules_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSchedulesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).ListSchedules(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_ListSchedules_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).ListSchedules(ctx, req.(*ListSchedulesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_ListGeneratedRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListGeneratedRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).ListGeneratedRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_ListGeneratedRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).ListGeneratedRecords(ctx, req.(*ListGeneratedRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_CreateBook_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateBookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).CreateBook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_CreateBook_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).CreateBook(ctx, req.(*CreateBookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_CreateAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).CreateAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_CreateAsset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).CreateAsset(ctx, req.(*CreateAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_GetAsset_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAssetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).GetAsset(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_GetAsset_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).GetAsset(ctx, req.(*GetAssetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MoneybookService_OverrideAssetBalance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OverrideAssetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MoneybookServiceServer).OverrideAssetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MoneybookService_OverrideAssetBalance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MoneybookServiceServer).OverrideAssetBalance(ctx, req.(*OverrideAssetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MoneybookService_ServiceDesc is the grpc.ServiceDesc for MoneybookService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MoneybookService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "moneybook.v1.MoneybookService",
	HandlerType: (*MoneybookServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateRecord",
			Handler:    _MoneybookService_CreateRecord_Handler,
		},
		{
			MethodName: "UpdateRecord",
			Handler:    _MoneybookService_UpdateRecord_Handler,
		},
		{
			MethodName: "DeleteRecord",
			Handler:    _MoneybookService_DeleteRecord_Handler,
		},
		{
			MethodName: "ListRecords",
			Handler:    _MoneybookService_ListRecords_Handler,
		},
		{
			MethodName: "CreateTransfer",
			Handler:    _MoneybookService_CreateTransfer_Handler,
		},
		{
			MethodName: "UpdateTransfer",
			Handler:    _MoneybookService_UpdateTransfer_Handler,
		},
		{
			MethodName: "DeleteTransfer",
			Handler:    _MoneybookService_DeleteTransfer_Handler,
		},
		{
			MethodName: "CreateScheduledRecord",
			Handler:    _MoneybookService_CreateScheduledRecord_Handler,
		},
		{
			MethodName: "PauseSchedule",
			Handler:    _MoneybookService_PauseSchedule_Handler,
		},
		{
			MethodName: "ResumeSchedule",
			Handler:    _MoneybookService_ResumeSchedule_Handler,
		},
		{
			MethodName: "ExecuteScheduleNow",
			Handler:    _MoneybookService_ExecuteScheduleNow_Handler,
		},
		{
			MethodName: "ListSchedules",
			Handler:    _MoneybookService_ListSchedules_Handler,
		},
		{
			MethodName: "ListGeneratedRecords",
			Handler:    _MoneybookService_ListGeneratedRecords_Handler,
		},
		{
			MethodName: "CreateBook",
			Handler:    _MoneybookService_CreateBook_Handler,
		},
		{
			MethodName: "CreateAsset",
			Handler:    _MoneybookService_CreateAsset_Handler,
		},
		{
			MethodName: "GetAsset",
			Handler:    _MoneybookService_GetAsset_Handler,
		},
		{
			MethodName: "OverrideAssetBalance",
			Handler:    _MoneybookService_OverrideAssetBalance_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moneybook/v1/moneybook.proto",
}
