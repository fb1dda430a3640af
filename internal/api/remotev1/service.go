package remotev1

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// RemoteServiceName is the fully-qualified name of the remote service.
const RemoteServiceName = "moodbox.remote.v1.RemoteService"

// Procedure paths of the remote service.
const (
	RemoteServicePressProcedure             = "/moodbox.remote.v1.RemoteService/Press"
	RemoteServiceSelectProcedure            = "/moodbox.remote.v1.RemoteService/Select"
	RemoteServiceGetViewProcedure           = "/moodbox.remote.v1.RemoteService/GetView"
	RemoteServiceReportPlayerEventProcedure = "/moodbox.remote.v1.RemoteService/ReportPlayerEvent"
	RemoteServiceWatchProcedure             = "/moodbox.remote.v1.RemoteService/Watch"
)

// RemoteServiceHandler is implemented by the server side of the service.
type RemoteServiceHandler interface {
	Press(context.Context, *connect.Request[PressRequest]) (*connect.Response[ViewResponse], error)
	Select(context.Context, *connect.Request[SelectRequest]) (*connect.Response[ViewResponse], error)
	GetView(context.Context, *connect.Request[GetViewRequest]) (*connect.Response[ViewResponse], error)
	ReportPlayerEvent(context.Context, *connect.Request[PlayerEventRequest]) (*connect.Response[PlayerEventResponse], error)
	Watch(context.Context, *connect.Request[WatchRequest], *connect.ServerStream[Notification]) error
}

// NewRemoteServiceHandler builds an HTTP handler for the service and returns
// the path to mount it on.
func NewRemoteServiceHandler(svc RemoteServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(Codec())}, opts...)

	press := connect.NewUnaryHandler(RemoteServicePressProcedure, svc.Press, opts...)
	sel := connect.NewUnaryHandler(RemoteServiceSelectProcedure, svc.Select, opts...)
	getView := connect.NewUnaryHandler(RemoteServiceGetViewProcedure, svc.GetView, opts...)
	report := connect.NewUnaryHandler(RemoteServiceReportPlayerEventProcedure, svc.ReportPlayerEvent, opts...)
	watch := connect.NewServerStreamHandler(RemoteServiceWatchProcedure, svc.Watch, opts...)

	return "/" + RemoteServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RemoteServicePressProcedure:
			press.ServeHTTP(w, r)
		case RemoteServiceSelectProcedure:
			sel.ServeHTTP(w, r)
		case RemoteServiceGetViewProcedure:
			getView.ServeHTTP(w, r)
		case RemoteServiceReportPlayerEventProcedure:
			report.ServeHTTP(w, r)
		case RemoteServiceWatchProcedure:
			watch.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// RemoteServiceClient is a client for the remote service.
type RemoteServiceClient interface {
	Press(context.Context, *connect.Request[PressRequest]) (*connect.Response[ViewResponse], error)
	Select(context.Context, *connect.Request[SelectRequest]) (*connect.Response[ViewResponse], error)
	GetView(context.Context, *connect.Request[GetViewRequest]) (*connect.Response[ViewResponse], error)
	ReportPlayerEvent(context.Context, *connect.Request[PlayerEventRequest]) (*connect.Response[PlayerEventResponse], error)
	Watch(context.Context, *connect.Request[WatchRequest]) (*connect.ServerStreamForClient[Notification], error)
}

// NewRemoteServiceClient creates a client for the service at baseURL.
func NewRemoteServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) RemoteServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec())}, opts...)

	return &remoteServiceClient{
		press:   connect.NewClient[PressRequest, ViewResponse](httpClient, baseURL+RemoteServicePressProcedure, opts...),
		sel:     connect.NewClient[SelectRequest, ViewResponse](httpClient, baseURL+RemoteServiceSelectProcedure, opts...),
		getView: connect.NewClient[GetViewRequest, ViewResponse](httpClient, baseURL+RemoteServiceGetViewProcedure, opts...),
		report:  connect.NewClient[PlayerEventRequest, PlayerEventResponse](httpClient, baseURL+RemoteServiceReportPlayerEventProcedure, opts...),
		watch:   connect.NewClient[WatchRequest, Notification](httpClient, baseURL+RemoteServiceWatchProcedure, opts...),
	}
}

type remoteServiceClient struct {
	press   *connect.Client[PressRequest, ViewResponse]
	sel     *connect.Client[SelectRequest, ViewResponse]
	getView *connect.Client[GetViewRequest, ViewResponse]
	report  *connect.Client[PlayerEventRequest, PlayerEventResponse]
	watch   *connect.Client[WatchRequest, Notification]
}

func (c *remoteServiceClient) Press(ctx context.Context, req *connect.Request[PressRequest]) (*connect.Response[ViewResponse], error) {
	return c.press.CallUnary(ctx, req)
}

func (c *remoteServiceClient) Select(ctx context.Context, req *connect.Request[SelectRequest]) (*connect.Response[ViewResponse], error) {
	return c.sel.CallUnary(ctx, req)
}

func (c *remoteServiceClient) GetView(ctx context.Context, req *connect.Request[GetViewRequest]) (*connect.Response[ViewResponse], error) {
	return c.getView.CallUnary(ctx, req)
}

func (c *remoteServiceClient) ReportPlayerEvent(ctx context.Context, req *connect.Request[PlayerEventRequest]) (*connect.Response[PlayerEventResponse], error) {
	return c.report.CallUnary(ctx, req)
}

func (c *remoteServiceClient) Watch(ctx context.Context, req *connect.Request[WatchRequest]) (*connect.ServerStreamForClient[Notification], error) {
	return c.watch.CallServerStream(ctx, req)
}
