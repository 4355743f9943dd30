package cloudwriter

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	calls  int
	bucket string
	key    string
	body   []byte
	err    error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	f.bucket = aws.ToString(params.Bucket)
	f.key = aws.ToString(params.Key)
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3WriterUploadsOnceOnClose(t *testing.T) {
	fake := &fakeS3{}
	w, err := NewS3WriterFactoryFrom(fake).NewWriter("flights", "events/score_events/data.parquet")
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if _, err := w.Write([]byte("PAR1")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := w.Write([]byte("data")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if fake.calls != 0 {
		t.Fatalf("uploaded before close: calls=%d", fake.calls)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if fake.calls != 1 || fake.bucket != "flights" || fake.key != "events/score_events/data.parquet" || string(fake.body) != "PAR1data" {
		t.Fatalf("upload got calls=%d bucket=%q key=%q body=%q", fake.calls, fake.bucket, fake.key, fake.body)
	}
	if _, err := w.Write([]byte("late")); err == nil {
		t.Fatalf("write after close succeeded")
	}
}

func TestS3WriterWrapsUploadError(t *testing.T) {
	boom := errors.New("access denied")
	w, _ := NewS3WriterFactoryFrom(&fakeS3{err: boom}).NewWriter("flights", "a.json")
	if err := w.Close(); !errors.Is(err, boom) {
		t.Fatalf("Close got=%v want wrapped %v", err, boom)
	}
}

func TestNewWriterNeedsBucket(t *testing.T) {
	if _, err := NewS3WriterFactoryFrom(&fakeS3{}).NewWriter("", "a.json"); err == nil {
		t.Fatalf("expected an error for an empty bucket")
	}
}
