package cdn

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/cloudfront/sign"
)

var ErrInvalidPrivateKey = errors.New("invalid cloudfront private key")

// CloudFrontSigner produces canned-policy signed URLs on a CloudFront domain.
type CloudFrontSigner struct {
	baseURL string
	signer  *sign.URLSigner
	now     func() time.Time
}

// New parses privateKeyPEM (PKCS#8 or PKCS#1). Literal "\n" sequences are
// accepted so the key can live in a single-line env var.
func New(domain, keyPairID, privateKeyPEM string) (*CloudFrontSigner, error) {
	domain = strings.TrimSuffix(strings.TrimSpace(domain), "/")
	if domain == "" {
		return nil, fmt.Errorf("CloudFrontSigner - New: empty domain")
	}
	if keyPairID == "" {
		return nil, fmt.Errorf("CloudFrontSigner - New: empty key pair id")
	}

	key, err := parsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("CloudFrontSigner - New - parsePrivateKey: %w", err)
	}

	baseURL := domain
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	return &CloudFrontSigner{
		baseURL: baseURL,
		signer:  sign.NewURLSigner(keyPairID, key),
		now:     time.Now,
	}, nil
}

func (s *CloudFrontSigner) SignReadURL(objectKey string, expiry time.Duration) (string, error) {
	raw := s.baseURL + "/" + (&url.URL{Path: strings.TrimPrefix(objectKey, "/")}).EscapedPath()

	signed, err := s.signer.Sign(raw, s.now().Add(expiry))
	if err != nil {
		return "", fmt.Errorf("CloudFrontSigner - SignReadURL - s.signer.Sign: %w", err)
	}

	return signed, nil
}

func parsePrivateKey(raw string) (*rsa.PrivateKey, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), `\n`, "\n")

	block, _ := pem.Decode([]byte(raw))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block", ErrInvalidPrivateKey)
	}

	if parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		key, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA key", ErrInvalidPrivateKey)
		}
		return key, nil
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	return key, nil
}
