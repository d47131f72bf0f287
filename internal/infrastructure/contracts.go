package infrastructure

import "time"

type (
	// ReadURLSigner signs time-boxed GET URLs for objects served by the CDN.
	ReadURLSigner interface {
		SignReadURL(objectKey string, expiry time.Duration) (string, error)
	}
)
