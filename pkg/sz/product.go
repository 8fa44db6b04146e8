package sz

import (
	"context"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// Product reports version and license details for the installed native
// library. Obtain one from Environment.Product. A Product is safe for
// concurrent use.
type Product struct {
	core *envCore
}

func (p *Product) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.core.destroyed.Load() {
		return szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment has been destroyed", ErrDestroyed)
	}
	return nil
}

// GetVersion returns version and build details as JSON.
//
// The native call hands back a library-owned block with no failure
// channel, so a null pointer is the only error signal available.
func (p *Product) GetVersion(ctx context.Context) (string, error) {
	if err := p.ready(ctx); err != nil {
		return "", err
	}
	ptr := ffi.Native().ProductGetVersion()
	if ptr == 0 {
		return "", szerror.New(szerror.Unknown, "failed to get version")
	}
	return ffi.StringNoFree(ptr), nil
}

// GetLicense returns the license terms in effect as JSON.
func (p *Product) GetLicense(ctx context.Context) (string, error) {
	if err := p.ready(ctx); err != nil {
		return "", err
	}
	ptr := ffi.Native().ProductGetLicense()
	if ptr == 0 {
		return "", szerror.New(szerror.Unknown, "failed to get license")
	}
	return ffi.StringNoFree(ptr), nil
}
