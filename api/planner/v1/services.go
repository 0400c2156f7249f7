package plannerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	AuthService_Me_FullMethodName     = "/planner.v1.AuthService/Me"
	AuthService_Logout_FullMethodName = "/planner.v1.AuthService/Logout"

	TaskService_List_FullMethodName   = "/planner.v1.TaskService/List"
	TaskService_Create_FullMethodName = "/planner.v1.TaskService/Create"
	TaskService_Update_FullMethodName = "/planner.v1.TaskService/Update"
	TaskService_Delete_FullMethodName = "/planner.v1.TaskService/Delete"
	TaskService_Stats_FullMethodName  = "/planner.v1.TaskService/Stats"

	ReminderService_List_FullMethodName   = "/planner.v1.ReminderService/List"
	ReminderService_Create_FullMethodName = "/planner.v1.ReminderService/Create"
	ReminderService_Delete_FullMethodName = "/planner.v1.ReminderService/Delete"

	CalendarService_List_FullMethodName   = "/planner.v1.CalendarService/List"
	CalendarService_Create_FullMethodName = "/planner.v1.CalendarService/Create"
	CalendarService_Update_FullMethodName = "/planner.v1.CalendarService/Update"
	CalendarService_Delete_FullMethodName = "/planner.v1.CalendarService/Delete"
	CalendarService_Month_FullMethodName  = "/planner.v1.CalendarService/Month"

	VoiceService_Transcribe_FullMethodName = "/planner.v1.VoiceService/Transcribe"
)

// unaryHandler adapts a typed service method to grpc.MethodDesc.Handler.
func unaryHandler[S any, Req any, Resp any](fullMethod string, call func(S, context.Context, *Req) (*Resp, error)) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(S), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(S), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// invoke performs a unary call with the JSON codec selected.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// AuthService

type AuthServiceServer interface {
	Me(context.Context, *MeRequest) (*MeResponse, error)
	Logout(context.Context, *LogoutRequest) (*LogoutResponse, error)
}

type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) Me(context.Context, *MeRequest) (*MeResponse, error) {
	return nil, unimplemented("Me")
}
func (UnimplementedAuthServiceServer) Logout(context.Context, *LogoutRequest) (*LogoutResponse, error) {
	return nil, unimplemented("Logout")
}

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planner.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Me", Handler: unaryHandler(AuthService_Me_FullMethodName, AuthServiceServer.Me)},
		{MethodName: "Logout", Handler: unaryHandler(AuthService_Logout_FullMethodName, AuthServiceServer.Logout)},
	},
	Metadata: "planner/v1/planner.json",
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

type AuthServiceClient interface {
	Me(ctx context.Context, in *MeRequest, opts ...grpc.CallOption) (*MeResponse, error)
	Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error)
}

type authServiceClient struct{ cc grpc.ClientConnInterface }

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) Me(ctx context.Context, in *MeRequest, opts ...grpc.CallOption) (*MeResponse, error) {
	return invoke[MeResponse](ctx, c.cc, AuthService_Me_FullMethodName, in, opts)
}
func (c *authServiceClient) Logout(ctx context.Context, in *LogoutRequest, opts ...grpc.CallOption) (*LogoutResponse, error) {
	return invoke[LogoutResponse](ctx, c.cc, AuthService_Logout_FullMethodName, in, opts)
}

// TaskService

type TaskServiceServer interface {
	List(context.Context, *ListTasksRequest) (*ListTasksResponse, error)
	Create(context.Context, *CreateTaskRequest) (*CreateTaskResponse, error)
	Update(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error)
	Delete(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error)
	Stats(context.Context, *TaskStatsRequest) (*TaskStatsResponse, error)
}

type UnimplementedTaskServiceServer struct{}

func (UnimplementedTaskServiceServer) List(context.Context, *ListTasksRequest) (*ListTasksResponse, error) {
	return nil, unimplemented("List")
}
func (UnimplementedTaskServiceServer) Create(context.Context, *CreateTaskRequest) (*CreateTaskResponse, error) {
	return nil, unimplemented("Create")
}
func (UnimplementedTaskServiceServer) Update(context.Context, *UpdateTaskRequest) (*UpdateTaskResponse, error) {
	return nil, unimplemented("Update")
}
func (UnimplementedTaskServiceServer) Delete(context.Context, *DeleteTaskRequest) (*DeleteTaskResponse, error) {
	return nil, unimplemented("Delete")
}
func (UnimplementedTaskServiceServer) Stats(context.Context, *TaskStatsRequest) (*TaskStatsResponse, error) {
	return nil, unimplemented("Stats")
}

var TaskService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planner.v1.TaskService",
	HandlerType: (*TaskServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: unaryHandler(TaskService_List_FullMethodName, TaskServiceServer.List)},
		{MethodName: "Create", Handler: unaryHandler(TaskService_Create_FullMethodName, TaskServiceServer.Create)},
		{MethodName: "Update", Handler: unaryHandler(TaskService_Update_FullMethodName, TaskServiceServer.Update)},
		{MethodName: "Delete", Handler: unaryHandler(TaskService_Delete_FullMethodName, TaskServiceServer.Delete)},
		{MethodName: "Stats", Handler: unaryHandler(TaskService_Stats_FullMethodName, TaskServiceServer.Stats)},
	},
	Metadata: "planner/v1/planner.json",
}

func RegisterTaskServiceServer(s grpc.ServiceRegistrar, srv TaskServiceServer) {
	s.RegisterService(&TaskService_ServiceDesc, srv)
}

type TaskServiceClient interface {
	List(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error)
	Create(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error)
	Update(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error)
	Delete(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error)
	Stats(ctx context.Context, in *TaskStatsRequest, opts ...grpc.CallOption) (*TaskStatsResponse, error)
}

type taskServiceClient struct{ cc grpc.ClientConnInterface }

func NewTaskServiceClient(cc grpc.ClientConnInterface) TaskServiceClient {
	return &taskServiceClient{cc}
}

func (c *taskServiceClient) List(ctx context.Context, in *ListTasksRequest, opts ...grpc.CallOption) (*ListTasksResponse, error) {
	return invoke[ListTasksResponse](ctx, c.cc, TaskService_List_FullMethodName, in, opts)
}
func (c *taskServiceClient) Create(ctx context.Context, in *CreateTaskRequest, opts ...grpc.CallOption) (*CreateTaskResponse, error) {
	return invoke[CreateTaskResponse](ctx, c.cc, TaskService_Create_FullMethodName, in, opts)
}
func (c *taskServiceClient) Update(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*UpdateTaskResponse, error) {
	return invoke[UpdateTaskResponse](ctx, c.cc, TaskService_Update_FullMethodName, in, opts)
}
func (c *taskServiceClient) Delete(ctx context.Context, in *DeleteTaskRequest, opts ...grpc.CallOption) (*DeleteTaskResponse, error) {
	return invoke[DeleteTaskResponse](ctx, c.cc, TaskService_Delete_FullMethodName, in, opts)
}
func (c *taskServiceClient) Stats(ctx context.Context, in *TaskStatsRequest, opts ...grpc.CallOption) (*TaskStatsResponse, error) {
	return invoke[TaskStatsResponse](ctx, c.cc, TaskService_Stats_FullMethodName, in, opts)
}

// ReminderService

type ReminderServiceServer interface {
	List(context.Context, *ListRemindersRequest) (*ListRemindersResponse, error)
	Create(context.Context, *CreateReminderRequest) (*CreateReminderResponse, error)
	Delete(context.Context, *DeleteReminderRequest) (*DeleteReminderResponse, error)
}

type UnimplementedReminderServiceServer struct{}

func (UnimplementedReminderServiceServer) List(context.Context, *ListRemindersRequest) (*ListRemindersResponse, error) {
	return nil, unimplemented("List")
}
func (UnimplementedReminderServiceServer) Create(context.Context, *CreateReminderRequest) (*CreateReminderResponse, error) {
	return nil, unimplemented("Create")
}
func (UnimplementedReminderServiceServer) Delete(context.Context, *DeleteReminderRequest) (*DeleteReminderResponse, error) {
	return nil, unimplemented("Delete")
}

var ReminderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planner.v1.ReminderService",
	HandlerType: (*ReminderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: unaryHandler(ReminderService_List_FullMethodName, ReminderServiceServer.List)},
		{MethodName: "Create", Handler: unaryHandler(ReminderService_Create_FullMethodName, ReminderServiceServer.Create)},
		{MethodName: "Delete", Handler: unaryHandler(ReminderService_Delete_FullMethodName, ReminderServiceServer.Delete)},
	},
	Metadata: "planner/v1/planner.json",
}

func RegisterReminderServiceServer(s grpc.ServiceRegistrar, srv ReminderServiceServer) {
	s.RegisterService(&ReminderService_ServiceDesc, srv)
}

type ReminderServiceClient interface {
	List(ctx context.Context, in *ListRemindersRequest, opts ...grpc.CallOption) (*ListRemindersResponse, error)
	Create(ctx context.Context, in *CreateReminderRequest, opts ...grpc.CallOption) (*CreateReminderResponse, error)
	Delete(ctx context.Context, in *DeleteReminderRequest, opts ...grpc.CallOption) (*DeleteReminderResponse, error)
}

type reminderServiceClient struct{ cc grpc.ClientConnInterface }

func NewReminderServiceClient(cc grpc.ClientConnInterface) ReminderServiceClient {
	return &reminderServiceClient{cc}
}

func (c *reminderServiceClient) List(ctx context.Context, in *ListRemindersRequest, opts ...grpc.CallOption) (*ListRemindersResponse, error) {
	return invoke[ListRemindersResponse](ctx, c.cc, ReminderService_List_FullMethodName, in, opts)
}
func (c *reminderServiceClient) Create(ctx context.Context, in *CreateReminderRequest, opts ...grpc.CallOption) (*CreateReminderResponse, error) {
	return invoke[CreateReminderResponse](ctx, c.cc, ReminderService_Create_FullMethodName, in, opts)
}
func (c *reminderServiceClient) Delete(ctx context.Context, in *DeleteReminderRequest, opts ...grpc.CallOption) (*DeleteReminderResponse, error) {
	return invoke[DeleteReminderResponse](ctx, c.cc, ReminderService_Delete_FullMethodName, in, opts)
}

// CalendarService

type CalendarServiceServer interface {
	List(context.Context, *ListEventsRequest) (*ListEventsResponse, error)
	Create(context.Context, *CreateEventRequest) (*CreateEventResponse, error)
	Update(context.Context, *UpdateEventRequest) (*UpdateEventResponse, error)
	Delete(context.Context, *DeleteEventRequest) (*DeleteEventResponse, error)
	Month(context.Context, *MonthRequest) (*MonthResponse, error)
}

type UnimplementedCalendarServiceServer struct{}

func (UnimplementedCalendarServiceServer) List(context.Context, *ListEventsRequest) (*ListEventsResponse, error) {
	return nil, unimplemented("List")
}
func (UnimplementedCalendarServiceServer) Create(context.Context, *CreateEventRequest) (*CreateEventResponse, error) {
	return nil, unimplemented("Create")
}
func (UnimplementedCalendarServiceServer) Update(context.Context, *UpdateEventRequest) (*UpdateEventResponse, error) {
	return nil, unimplemented("Update")
}
func (UnimplementedCalendarServiceServer) Delete(context.Context, *DeleteEventRequest) (*DeleteEventResponse, error) {
	return nil, unimplemented("Delete")
}
func (UnimplementedCalendarServiceServer) Month(context.Context, *MonthRequest) (*MonthResponse, error) {
	return nil, unimplemented("Month")
}

var CalendarService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planner.v1.CalendarService",
	HandlerType: (*CalendarServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: unaryHandler(CalendarService_List_FullMethodName, CalendarServiceServer.List)},
		{MethodName: "Create", Handler: unaryHandler(CalendarService_Create_FullMethodName, CalendarServiceServer.Create)},
		{MethodName: "Update", Handler: unaryHandler(CalendarService_Update_FullMethodName, CalendarServiceServer.Update)},
		{MethodName: "Delete", Handler: unaryHandler(CalendarService_Delete_FullMethodName, CalendarServiceServer.Delete)},
		{MethodName: "Month", Handler: unaryHandler(CalendarService_Month_FullMethodName, CalendarServiceServer.Month)},
	},
	Metadata: "planner/v1/planner.json",
}

func RegisterCalendarServiceServer(s grpc.ServiceRegistrar, srv CalendarServiceServer) {
	s.RegisterService(&CalendarService_ServiceDesc, srv)
}

type CalendarServiceClient interface {
	List(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error)
	Create(ctx context.Context, in *CreateEventRequest, opts ...grpc.CallOption) (*CreateEventResponse, error)
	Update(ctx context.Context, in *UpdateEventRequest, opts ...grpc.CallOption) (*UpdateEventResponse, error)
	Delete(ctx context.Context, in *DeleteEventRequest, opts ...grpc.CallOption) (*DeleteEventResponse, error)
	Month(ctx context.Context, in *MonthRequest, opts ...grpc.CallOption) (*MonthResponse, error)
}

type calendarServiceClient struct{ cc grpc.ClientConnInterface }

func NewCalendarServiceClient(cc grpc.ClientConnInterface) CalendarServiceClient {
	return &calendarServiceClient{cc}
}

func (c *calendarServiceClient) List(ctx context.Context, in *ListEventsRequest, opts ...grpc.CallOption) (*ListEventsResponse, error) {
	return invoke[ListEventsResponse](ctx, c.cc, CalendarService_List_FullMethodName, in, opts)
}
func (c *calendarServiceClient) Create(ctx context.Context, in *CreateEventRequest, opts ...grpc.CallOption) (*CreateEventResponse, error) {
	return invoke[CreateEventResponse](ctx, c.cc, CalendarService_Create_FullMethodName, in, opts)
}
func (c *calendarServiceClient) Update(ctx context.Context, in *UpdateEventRequest, opts ...grpc.CallOption) (*UpdateEventResponse, error) {
	return invoke[UpdateEventResponse](ctx, c.cc, CalendarService_Update_FullMethodName, in, opts)
}
func (c *calendarServiceClient) Delete(ctx context.Context, in *DeleteEventRequest, opts ...grpc.CallOption) (*DeleteEventResponse, error) {
	return invoke[DeleteEventResponse](ctx, c.cc, CalendarService_Delete_FullMethodName, in, opts)
}
func (c *calendarServiceClient) Month(ctx context.Context, in *MonthRequest, opts ...grpc.CallOption) (*MonthResponse, error) {
	return invoke[MonthResponse](ctx, c.cc, CalendarService_Month_FullMethodName, in, opts)
}

// VoiceService

type VoiceServiceServer interface {
	Transcribe(context.Context, *TranscribeRequest) (*TranscribeResponse, error)
}

type UnimplementedVoiceServiceServer struct{}

func (UnimplementedVoiceServiceServer) Transcribe(context.Context, *TranscribeRequest) (*TranscribeResponse, error) {
	return nil, unimplemented("Transcribe")
}

var VoiceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planner.v1.VoiceService",
	HandlerType: (*VoiceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Transcribe", Handler: unaryHandler(VoiceService_Transcribe_FullMethodName, VoiceServiceServer.Transcribe)},
	},
	Metadata: "planner/v1/planner.json",
}

func RegisterVoiceServiceServer(s grpc.ServiceRegistrar, srv VoiceServiceServer) {
	s.RegisterService(&VoiceService_ServiceDesc, srv)
}

type VoiceServiceClient interface {
	Transcribe(ctx context.Context, in *TranscribeRequest, opts ...grpc.CallOption) (*TranscribeResponse, error)
}

type voiceServiceClient struct{ cc grpc.ClientConnInterface }

func NewVoiceServiceClient(cc grpc.ClientConnInterface) VoiceServiceClient {
	return &voiceServiceClient{cc}
}

func (c *voiceServiceClient) Transcribe(ctx context.Context, in *TranscribeRequest, opts ...grpc.CallOption) (*TranscribeResponse, error) {
	return invoke[TranscribeResponse](ctx, c.cc, VoiceService_Transcribe_FullMethodName, in, opts)
}
