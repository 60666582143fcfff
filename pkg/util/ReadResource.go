// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package util

import (
	"io/ioutil"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type ReadResourceInput struct {
	Uri      string
	S3Client s3iface.S3API // required for s3:// uris
}

// ReadResource reads all the bytes of a local file or an S3 object.
// Local paths may start with "~".
func ReadResource(input *ReadResourceInput) ([]byte, error) {
	if strings.HasPrefix(input.Uri, SchemeS3) {
		bucket, key, err := SplitS3Uri(input.Uri)
		if err != nil {
			return nil, err
		}
		if input.S3Client == nil {
			return nil, errors.Errorf("cannot read %q without an s3 client", input.Uri)
		}
		out, err := input.S3Client.GetObject(&s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return nil, errors.Wrapf(err, "error getting object %q from bucket %q", key, bucket)
		}
		defer out.Body.Close()
		b, err := ioutil.ReadAll(out.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading object %q from bucket %q", key, bucket)
		}
		return b, nil
	}

	p, err := homedir.Expand(input.Uri)
	if err != nil {
		return nil, errors.Wrapf(err, "error expanding path %q", input.Uri)
	}
	b, err := ioutil.ReadFile(p)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading file %q", p)
	}
	return b, nil
}
