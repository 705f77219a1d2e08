package registry

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/source-build/dist-services/logging"
	"github.com/source-build/dist-services/rpcpb"
)

// ClientOptions configures a Client: what to register, where the registry
// lives, and how hard to retry keeping it alive.
type ClientOptions struct {
	RegistryAddr      string
	Group             string
	Name              string
	IP                string
	Port              uint32
	HeartbeatInterval time.Duration
	MaxRetryAttempts  uint
	Logger            *zap.Logger
}

// Client registers a local service with the registry and keeps it alive by
// re-registering on a fixed interval. Register acts as the heartbeat, so
// there is no separate keepalive RPC to maintain.
type Client struct {
	opt     ClientOptions
	conn    *grpc.ClientConn
	rpc     rpcpb.RegistryClient
	closeCh chan struct{}
	quitCh  chan struct{}
}

// NewClient dials the registry, performs the initial Register, and starts
// the background heartbeat loop. It returns once the first registration
// succeeds or fails.
func NewClient(opt ClientOptions) (*Client, error) {
	if opt.Group == "" || opt.Name == "" {
		panic("registry: group and name are required")
	}
	if opt.HeartbeatInterval <= 0 {
		opt.HeartbeatInterval = 10 * time.Second
	}

	conn, err := grpc.Dial(opt.RegistryAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpcpb.CodecName)),
	)
	if err != nil {
		return nil, err
	}

	c := &Client{
		opt:     opt,
		conn:    conn,
		rpc:     rpcpb.NewRegistryClient(conn),
		closeCh: make(chan struct{}),
		quitCh:  make(chan struct{}, 1),
	}

	if err := c.register(); err != nil {
		conn.Close()
		return nil, err
	}

	go c.heartbeat()
	return c, nil
}

func (c *Client) register() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := c.rpc.Register(ctx, &rpcpb.RegisterServiceRequest{
		Group: c.opt.Group,
		Name:  c.opt.Name,
		IP:    c.opt.IP,
		Port:  c.opt.Port,
	})
	if err != nil {
		c.loggerErr("register failed", err)
		return err
	}
	c.loggerInfo("registered")
	return nil
}

// heartbeat re-registers on a fixed cadence, well under HeartbeatInterval,
// retrying transient failures with backoff before giving up and signaling
// ListenQuit.
func (c *Client) heartbeat() {
	ticker := time.NewTicker(c.opt.HeartbeatInterval / 2)
	defer ticker.Stop()

	attempts := uint(c.opt.MaxRetryAttempts)
	if attempts == 0 {
		attempts = 5
	}

	for {
		select {
		case <-c.closeCh:
			return
		case <-ticker.C:
			err := retry.Do(c.register,
				retry.Attempts(attempts),
				retry.DelayType(retry.BackOffDelay),
				retry.Delay(time.Second),
			)
			if err != nil {
				c.loggerErr("giving up on re-registration", err)
				select {
				case c.quitCh <- struct{}{}:
				default:
				}
				return
			}
		}
	}
}

// ListenQuit signals when the client has given up re-registering and the
// owning service should shut down.
func (c *Client) ListenQuit() <-chan struct{} {
	return c.quitCh
}

// Stop deregisters (best effort) and closes the connection to the registry.
func (c *Client) Stop() {
	close(c.closeCh)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := c.rpc.Deregister(ctx, &rpcpb.DeregisterServiceRequest{Group: c.opt.Group, Name: c.opt.Name}); err != nil {
		c.loggerWar("deregister failed", err)
	}
	_ = c.conn.Close()
}

func (c *Client) loggerInfo(msg string) {
	if c.opt.Logger != nil {
		c.opt.Logger.Info(msg, zap.String("group", c.opt.Group), zap.String("name", c.opt.Name))
		return
	}
	logging.Info("registry-client", msg, "group", c.opt.Group, "name", c.opt.Name)
}

func (c *Client) loggerWar(msg string, err error) {
	if c.opt.Logger != nil {
		c.opt.Logger.Warn(msg, zap.String("group", c.opt.Group), zap.String("name", c.opt.Name), zap.Error(err))
		return
	}
	logging.Warning("registry-client", msg, "group", c.opt.Group, "name", c.opt.Name, "err", err.Error())
}

func (c *Client) loggerErr(msg string, err error) {
	if c.opt.Logger != nil {
		c.opt.Logger.Error(msg, zap.String("group", c.opt.Group), zap.String("name", c.opt.Name), zap.Error(err))
		return
	}
	logging.Error("registry-client", msg, "group", c.opt.Group, "name", c.opt.Name, "err", err.Error())
}
