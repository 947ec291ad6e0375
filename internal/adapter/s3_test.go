package adapter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-client-panel/internal/logger"
)

// fakeS3 keeps objects in a map and honours If-None-Match: *.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	puts    []string
	// collide makes the first n conditional puts fail as if the key existed
	collide int
	err     error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	key := aws.ToString(in.Key)
	f.puts = append(f.puts, key)

	if aws.ToString(in.IfNoneMatch) == "*" {
		_, exists := f.objects[key]
		if exists || f.collide > 0 {
			f.collide--
			return nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"}
		}
	}

	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[key] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	body, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(body))}, nil
}

func TestS3BinClient_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()
	c := newS3BinClient(fake, "bins", 0, logger.Nop())

	id, err := c.CreateBin(ctx, "v1")
	require.NoError(t, err)
	assert.Contains(t, fake.objects, "bins/"+id+".json")
	assert.JSONEq(t, `{"data":"v1"}`, string(fake.objects["bins/"+id+".json"]))

	got, err := c.GetBin(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "v1", got)

	require.NoError(t, c.UpdateBin(ctx, id, "v2"))
	got, err = c.GetBin(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestS3BinClient_CreateRetriesOnPreconditionFailed(t *testing.T) {
	fake := newFakeS3()
	fake.collide = 2
	c := newS3BinClient(fake, "bins", 0, logger.Nop())

	id, err := c.CreateBin(context.Background(), "v1")
	require.NoError(t, err)
	assert.Len(t, fake.puts, 3)
	assert.Equal(t, "bins/"+id+".json", fake.puts[2])
}

func TestS3BinClient_CreateGivesUp(t *testing.T) {
	fake := newFakeS3()
	fake.collide = createAttempts
	c := newS3BinClient(fake, "bins", 0, logger.Nop())

	_, err := c.CreateBin(context.Background(), "v1")
	require.ErrorIs(t, err, ErrConflict)
}

func TestS3BinClient_GetMissing(t *testing.T) {
	c := newS3BinClient(newFakeS3(), "bins", 0, logger.Nop())

	_, err := c.GetBin(context.Background(), "abc12345")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestS3BinClient_GetMalformed(t *testing.T) {
	fake := newFakeS3()
	fake.objects["bins/abc12345.json"] = []byte(`{"data": 42}`)
	c := newS3BinClient(fake, "bins", 0, logger.Nop())

	_, err := c.GetBin(context.Background(), "abc12345")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestS3BinClient_TransportError(t *testing.T) {
	fake := newFakeS3()
	fake.err = errors.New("dial tcp: connection refused")
	c := newS3BinClient(fake, "bins", 0, logger.Nop())

	_, err := c.GetBin(context.Background(), "abc12345")
	require.ErrorIs(t, err, ErrRemoteUnavailable)
	require.ErrorIs(t, c.UpdateBin(context.Background(), "abc12345", "x"), ErrRemoteUnavailable)
}
