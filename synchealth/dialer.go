package synchealth

import (
	"context"

	"github.com/spacemeshos/synchealth/hubrpc"
)

type hubDialer struct {
	dialer *hubrpc.Dialer
}

// HubDialer connects to peers over the hub service.
func HubDialer(d *hubrpc.Dialer) Dialer {
	return hubDialer{dialer: d}
}

func (h hubDialer) Connect(ctx context.Context, addr string) (Conn, error) {
	client, err := h.dialer.Connect(ctx, addr)
	if err != nil {
		return nil, err
	}
	return client, nil
}
