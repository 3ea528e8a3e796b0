package wapi

import (
	"crypto/x509"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/crypto/pkcs12"
)

// embeddedPrefix marks a trust store path to be resolved against
// Settings.TrustStoreFS instead of the filesystem.
const embeddedPrefix = "embedded:"

// loadTrustStore reads a PKCS#12 trust store and returns a certificate
// pool of every certificate it contains.
func loadTrustStore(path, password string, embedded fs.FS) (
	pool *x509.CertPool, err error) {
	var data []byte
	if strings.HasPrefix(path, embeddedPrefix) {
		embeddedPath := strings.TrimPrefix(path, embeddedPrefix)
		data, err = fs.ReadFile(embedded, embeddedPath)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrustStoreRead, err)
	}

	blocks, err := pkcs12.ToPEM(data, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTrustStoreDecode, err)
	}

	pool = x509.NewCertPool()
	certsFound := 0
	for _, block := range blocks {
		if block.Type != "CERTIFICATE" {
			continue
		}
		certificate, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing certificate: %w",
				ErrTrustStoreDecode, err)
		}
		pool.AddCert(certificate)
		certsFound++
	}

	if certsFound == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTrustStoreNoCerts, path)
	}

	return pool, nil
}
