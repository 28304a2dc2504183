package storage

import (
	"bytes"
	"context"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	PublicURL string
}

// Blob is the object-storage client for profile photos and exported
// PDFs. Objects are addressed by key; PublicURL maps a key onto the
// externally reachable URL the bucket is served from.
type Blob struct {
	cfg    Config
	client *minio.Client
}

func New(cfg Config) (*Blob, error) {
	cl, err := minio.New(strings.TrimPrefix(cfg.Endpoint, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &Blob{cfg: cfg, client: cl}, nil
}

func (b *Blob) EnsureBucket(ctx context.Context) error {
	exists, err := b.client.BucketExists(ctx, b.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return b.client.MakeBucket(ctx, b.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (b *Blob) Put(ctx context.Context, key string, contentType string, data []byte) error {
	_, err := b.client.PutObject(ctx, b.cfg.Bucket, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}

func (b *Blob) Remove(ctx context.Context, key string) error {
	return b.client.RemoveObject(ctx, b.cfg.Bucket, key, minio.RemoveObjectOptions{})
}

func (b *Blob) PublicURL(key string) string {
	return strings.TrimSuffix(b.cfg.PublicURL, "/") + "/" + key
}

// KeyFromURL reverses PublicURL for objects this store issued.
func (b *Blob) KeyFromURL(url string) (string, bool) {
	base := strings.TrimSuffix(b.cfg.PublicURL, "/") + "/"
	if !strings.HasPrefix(url, base) {
		return "", false
	}
	return strings.TrimPrefix(url, base), true
}
