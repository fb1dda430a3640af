package tui

import (
	"context"

	"connectrpc.com/connect"

	remotev1 "github.com/osa030/moodbox/internal/api/remotev1"
)

// Remote is the server side of the terminal remote.
type Remote interface {
	Press(ctx context.Context, button string) (*remotev1.View, error)
	Select(ctx context.Context, index int) (*remotev1.View, error)
	GetView(ctx context.Context) (*remotev1.View, error)
	// Watch streams views until ctx ends or the server goes away, then
	// closes the channel.
	Watch(ctx context.Context) (<-chan *remotev1.View, error)
}

// ClientRemote is a Remote backed by the RPC client.
type ClientRemote struct {
	client remotev1.RemoteServiceClient
}

// NewClientRemote creates a Remote for client.
func NewClientRemote(client remotev1.RemoteServiceClient) *ClientRemote {
	return &ClientRemote{client: client}
}

func (r *ClientRemote) Press(ctx context.Context, button string) (*remotev1.View, error) {
	resp, err := r.client.Press(ctx, connect.NewRequest(&remotev1.PressRequest{Button: button}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.View, nil
}

func (r *ClientRemote) Select(ctx context.Context, index int) (*remotev1.View, error) {
	resp, err := r.client.Select(ctx, connect.NewRequest(&remotev1.SelectRequest{Index: index}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.View, nil
}

func (r *ClientRemote) GetView(ctx context.Context) (*remotev1.View, error) {
	resp, err := r.client.GetView(ctx, connect.NewRequest(&remotev1.GetViewRequest{}))
	if err != nil {
		return nil, err
	}
	return resp.Msg.View, nil
}

func (r *ClientRemote) Watch(ctx context.Context) (<-chan *remotev1.View, error) {
	stream, err := r.client.Watch(ctx, connect.NewRequest(&remotev1.WatchRequest{}))
	if err != nil {
		return nil, err
	}

	views := make(chan *remotev1.View)
	go func() {
		defer close(views)
		defer stream.Close()
		for stream.Receive() {
			if v := stream.Msg().View; v != nil {
				select {
				case views <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return views, nil
}
