package sz

import (
	"context"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/internal/ffi"
	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

// Diagnostic inspects the repository's datastore. Obtain one from
// Environment.Diagnostic. A Diagnostic is safe for concurrent use.
type Diagnostic struct {
	core *envCore
}

func (d *Diagnostic) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d.core.destroyed.Load() {
		return szerror.Wrap(szerror.EnvironmentDestroyed,
			"environment has been destroyed", ErrDestroyed)
	}
	return nil
}

// CheckRepositoryPerformance measures datastore insert throughput for
// secondsToRun seconds and reports the result.
func (d *Diagnostic) CheckRepositoryPerformance(ctx context.Context, secondsToRun int64) (string, error) {
	if err := d.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentDiagnostic,
		ffi.Native().DiagnosticCheckRepositoryPerformance(secondsToRun))
}

// GetRepositoryInfo describes the datastores backing the repository.
func (d *Diagnostic) GetRepositoryInfo(ctx context.Context) (string, error) {
	if err := d.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentDiagnostic, ffi.Native().DiagnosticGetRepositoryInfo())
}

// GetFeature returns the elements of a single feature. Feature IDs come
// from entity responses fetched with feature ID detail enabled.
func (d *Diagnostic) GetFeature(ctx context.Context, featureID FeatureID) (string, error) {
	if err := d.ready(ctx); err != nil {
		return "", err
	}
	return ffi.String(szerror.ComponentDiagnostic,
		ffi.Native().DiagnosticGetFeature(int64(featureID)))
}

// PurgeRepository deletes every record and entity in the repository.
// There is no undo. Intended for development and test repositories only.
func (d *Diagnostic) PurgeRepository(ctx context.Context) error {
	if err := d.ready(ctx); err != nil {
		return err
	}
	return ffi.Check(szerror.ComponentDiagnostic, ffi.Native().DiagnosticPurgeRepository())
}
