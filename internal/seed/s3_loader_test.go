package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, path string) (*Catalog, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) (*Catalog, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path)
	}
	return nil, errors.New("not implemented")
}

func failIfCalled(t *testing.T, which string) *mockLoader {
	return &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			t.Errorf("%s loader should not be called", which)
			return nil, errors.New("should not be called")
		},
	}
}

func TestFallbackLoader_S3Success(t *testing.T) {
	s3Catalog := &Catalog{Categories: []string{"FromS3"}}
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			assert.Equal(t, "seed/catalog.yaml", path, "S3 key should have prefix")
			return s3Catalog, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, failIfCalled(t, "file"), "seed/", true, zerolog.Nop())

	catalog, err := fallback.Load(context.Background(), "catalog.yaml")
	require.NoError(t, err)
	assert.Same(t, s3Catalog, catalog)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			return nil, errors.New("S3 connection failed")
		},
	}
	localCatalog := &Catalog{Categories: []string{"Local"}}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			assert.Equal(t, "catalog.yaml", path, "local file path should not have prefix")
			return localCatalog, nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seed/", true, zerolog.Nop())

	catalog, err := fallback.Load(context.Background(), "catalog.yaml")
	require.NoError(t, err)
	assert.Same(t, localCatalog, catalog)
}

func TestFallbackLoader_S3Disabled(t *testing.T) {
	localCatalog := &Catalog{}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			return localCatalog, nil
		},
	}

	fallback := NewFallbackLoader(failIfCalled(t, "S3"), fileLoader, "seed/", false, zerolog.Nop())

	catalog, err := fallback.Load(context.Background(), "catalog.yaml")
	require.NoError(t, err)
	assert.Same(t, localCatalog, catalog)
}

func TestFallbackLoader_NilS3Loader(t *testing.T) {
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			return &Catalog{}, nil
		},
	}

	fallback := NewFallbackLoader(nil, fileLoader, "seed/", true, zerolog.Nop())

	_, err := fallback.Load(context.Background(), "catalog.yaml")
	assert.NoError(t, err)
}

func TestFallbackLoader_BothFail(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			return nil, errors.New("S3 failed")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			return nil, errors.New("local file not found")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "seed/", true, zerolog.Nop())

	_, err := fallback.Load(context.Background(), "catalog.yaml")
	assert.EqualError(t, err, "local file not found")
}

func TestFallbackLoader_CancelledDuringS3(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) (*Catalog, error) {
			cancel()
			return nil, ctx.Err()
		},
	}

	fallback := NewFallbackLoader(s3Loader, failIfCalled(t, "file"), "seed/", true, zerolog.Nop())

	_, err := fallback.Load(ctx, "catalog.yaml")
	assert.ErrorIs(t, err, context.Canceled)
}
