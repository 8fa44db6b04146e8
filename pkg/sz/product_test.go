package sz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brianmacy/sz-sdk-go/pkg/sz/szerror"
)

func TestProductVersionAndLicense(t *testing.T) {
	env, fake := newTestEnv(t)
	prod, err := env.Product()
	require.NoError(t, err)
	ctx := context.Background()

	version, err := prod.GetVersion(ctx)
	require.NoError(t, err)
	assert.Contains(t, version, "VERSION")

	// The version block is library-owned. Fetching it twice must read
	// the same block without ever freeing it.
	again, err := prod.GetVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, version, again)
	assert.Empty(t, fake.Violations())

	license, err := prod.GetLicense(ctx)
	require.NoError(t, err)
	assert.Contains(t, license, "licenseType")
}

func TestProductInitFailure(t *testing.T) {
	env, fake := newTestEnv(t)

	fake.FailNext(szerror.ComponentProduct, 14, "Invalid datastore configuration")

	_, err := env.Product()
	require.Error(t, err)
	assert.True(t, szerror.IsCategory(err, szerror.Configuration))
}

func TestProductFailsAfterDestroy(t *testing.T) {
	env, _ := newTestEnv(t)
	prod, err := env.Product()
	require.NoError(t, err)

	require.NoError(t, env.Destroy())

	_, err = prod.GetVersion(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDestroyed)
}
