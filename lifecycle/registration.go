package lifecycle

import (
	"context"

	"github.com/source-build/dist-services/registry"
)

// RegistrationHooks is a Hooks implementation that registers a service with
// the registry on start and deregisters it on stop.
type RegistrationHooks struct {
	Options registry.ClientOptions

	client *registry.Client
}

func (h *RegistrationHooks) OnStart(ctx context.Context) error {
	c, err := registry.NewClient(h.Options)
	if err != nil {
		return err
	}
	h.client = c
	return nil
}

func (h *RegistrationHooks) OnStop() {
	if h.client != nil {
		h.client.Stop()
	}
}

// Quit surfaces the underlying registry client's give-up signal, for a
// caller that wants to shut itself down when heartbeating fails for good.
func (h *RegistrationHooks) Quit() <-chan struct{} {
	if h.client == nil {
		return nil
	}
	return h.client.ListenQuit()
}
