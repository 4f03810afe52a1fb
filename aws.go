// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package hooppdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/charmbracelet/log"
)

const defaultAwsRegion = `eu-west-2`

// AwsConn saves documents to an S3 bucket, under an optional
// prefix. Credentials are found in the usual places, such as
// ~/.aws/credentials or the environment.
type AwsConn struct {
	// these should be set before running Init(), or left to defaults
	Region string
	Bucket string
	Prefix string
	Logger *log.Logger

	sess     *session.Session
	s3svc    *s3.S3
	uploader *s3manager.Uploader
}

// MinimalInit does the bare minimum to initialise aws services
func (a *AwsConn) MinimalInit() error {
	if a.Region == "" {
		a.Region = defaultAwsRegion
	}
	if a.Logger == nil {
		a.Logger = log.New(os.Stdout)
	}
	if a.Bucket == "" {
		return errors.New("No S3 bucket set")
	}

	var err error
	a.sess, err = session.NewSession(&aws.Config{
		Region: aws.String(a.Region),
	})
	if err != nil {
		return fmt.Errorf("Failed to set up aws session: %w", err)
	}
	a.s3svc = s3.New(a.sess)
	a.uploader = s3manager.NewUploader(a.sess)

	return nil
}

// Init initialises aws services, also checking that the bucket
// exists and can be accessed.
func (a *AwsConn) Init() error {
	err := a.MinimalInit()
	if err != nil {
		return err
	}

	a.Logger.Debug("Checking bucket", "bucket", a.Bucket)
	_, err = a.s3svc.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(a.Bucket),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == "NotFound" {
			return fmt.Errorf("Bucket %s does not exist", a.Bucket)
		}
		return fmt.Errorf("Error checking bucket %s: %w", a.Bucket, err)
	}

	return nil
}

func (a *AwsConn) objKey(key string) string {
	return path.Join(a.Prefix, key)
}

// Upload uploads everything from r to the bucket as Prefix/key
func (a *AwsConn) Upload(key string, r io.Reader) error {
	_, err := a.uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(a.Bucket),
		Key:         aws.String(a.objKey(key)),
		Body:        r,
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("Failed to upload %s to bucket %s: %w", key, a.Bucket, err)
	}
	return nil
}

// Location returns the S3 URL of a key, for reporting
func (a *AwsConn) Location(key string) string {
	return "s3://" + a.Bucket + "/" + a.objKey(key)
}

func (a *AwsConn) GetLogger() *log.Logger {
	return a.Logger
}

// Log records an item with the Logger. Arguments are handled
// as with fmt.Println.
func (a *AwsConn) Log(v ...interface{}) {
	a.Logger.Print(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
