// Package publish uploads an exported site to a Backblaze B2 bucket.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"mime"
	"path"
	"strings"

	"gopkg.in/kothar/go-backblaze.v0"

	"github.com/wayfarer-travel/site/config"
)

// autoContentType asks B2 to detect the content type itself.
const autoContentType = "b2/x-auto"

var ErrMissingCredentials = errors.New("B2 credentials not set in env vars")

// Bucket is the part of a B2 bucket Upload needs.
type Bucket interface {
	UploadTypedFile(name, contentType string, meta map[string]string, file io.Reader) (*backblaze.File, error)
}

// Connect authorises with the configured B2 credentials and opens
// config.B2BucketName.
func Connect() (*backblaze.Bucket, error) {
	if config.B2KeyID == "" || config.B2AppKey == "" {
		return nil, ErrMissingCredentials
	}
	accountID := config.B2MasterKeyID
	if accountID == "" {
		accountID = config.B2KeyID
	}

	b2, err := backblaze.NewB2(backblaze.Credentials{
		AccountID:      accountID,
		ApplicationKey: config.B2AppKey,
		KeyID:          config.B2KeyID,
	})
	if err != nil {
		return nil, fmt.Errorf("B2 auth: %w", err)
	}

	log.Printf("[B2] Using bucket name: %s", config.B2BucketName)
	bucket, err := b2.Bucket(config.B2BucketName)
	if err != nil {
		return nil, fmt.Errorf("B2 bucket %s: %w", config.B2BucketName, err)
	}
	if bucket == nil {
		return nil, fmt.Errorf("B2 bucket %s not found", config.B2BucketName)
	}
	return bucket, nil
}

// Upload copies every file under fsys to bucket, keyed by its slash
// separated path below prefix. It returns the number of files uploaded.
func Upload(ctx context.Context, bucket Bucket, fsys fs.FS, prefix string) (int, error) {
	prefix = strings.Trim(prefix, "/")
	count := 0
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		key := name
		if prefix != "" {
			key = path.Join(prefix, name)
		}
		if err := uploadFile(bucket, fsys, name, key); err != nil {
			return fmt.Errorf("upload %s: %w", key, err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, err
	}
	log.Printf("[B2] Uploaded %d files", count)
	return count, nil
}

func uploadFile(bucket Bucket, fsys fs.FS, name, key string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = bucket.UploadTypedFile(key, ContentType(name), nil, f)
	return err
}

// ContentType picks the upload content type from the file extension.
func ContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".webp":
		return "image/webp"
	case ".xml":
		return "application/xml"
	}
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return autoContentType
}
