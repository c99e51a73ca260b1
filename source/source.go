// Package source fetches EDL text from wherever a cut lives, local
// disk or S3.
package source

import (
	"context"
	"io/ioutil"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
)

// Fetch reads the EDL text at location. Locations with an s3 scheme
// are downloaded using ambient AWS credentials; anything else is
// treated as a local file path.
func Fetch(ctx context.Context, location string) ([]byte, error) {
	if u, err := url.Parse(location); err == nil && u.Scheme == "s3" {
		return fetchObject(ctx, u)
	}
	b, err := ioutil.ReadFile(location)
	if err != nil {
		return nil, errors.Wrap(err, "reading edl")
	}
	return b, nil
}

func fetchObject(ctx context.Context, u *url.URL) ([]byte, error) {
	sess, err := session.NewSession()
	if err != nil {
		return nil, errors.Wrap(err, "creating aws session")
	}
	bucket, key := objectPath(u)
	buf := aws.NewWriteAtBuffer(nil)
	_, err = s3manager.NewDownloader(sess).DownloadWithContext(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "downloading s3://%s/%s", bucket, key)
	}
	return buf.Bytes(), nil
}

func objectPath(u *url.URL) (bucket, key string) {
	return u.Host, strings.TrimPrefix(u.Path, "/")
}
