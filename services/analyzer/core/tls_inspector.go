package core

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"math"
	"net"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
)

// CertInspector judges the certificate chain a host presents on port 443.
// The handshake itself accepts any chain so that expired or mismatched
// certificates can still be read; trust is decided by an explicit
// x509 verification afterwards.
type CertInspector struct {
	port    string
	timeout time.Duration
	roots   *x509.CertPool // nil means system roots
	now     func() time.Time
}

func NewCertInspector(timeout time.Duration) *CertInspector {
	return &CertInspector{
		port:    "443",
		timeout: timeout,
		now:     time.Now,
	}
}

// Inspect implements interfaces.TLSInspector
func (c *CertInspector) Inspect(ctx context.Context, host string) (models.TLSReport, error) {
	report := models.TLSReport{Issuer: models.Unknown}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: c.timeout},
		Config: &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: true, //nolint:gosec // verified below against roots
			MinVersion:         tls.VersionTLS10,
		},
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, c.port))
	if err != nil {
		return report, fmt.Errorf("tls handshake with %s: %w", host, err)
	}
	defer conn.Close()

	tlsConn, ok := conn.(*tls.Conn)
	if !ok {
		return report, fmt.Errorf("tls handshake with %s: unexpected connection type", host)
	}

	chain := tlsConn.ConnectionState().PeerCertificates
	if len(chain) == 0 {
		return report, errors.New("tls: server presented no certificate")
	}

	leaf := chain[0]
	now := c.now()
	expires := leaf.NotAfter

	report.Issuer = issuerName(leaf)
	report.ExpiresAt = &expires
	report.DaysRemaining = int(math.Floor(expires.Sub(now).Hours() / 24))

	intermediates := x509.NewCertPool()
	for _, cert := range chain[1:] {
		intermediates.AddCert(cert)
	}
	_, verifyErr := leaf.Verify(x509.VerifyOptions{
		DNSName:       host,
		Roots:         c.roots,
		Intermediates: intermediates,
		CurrentTime:   now,
	})
	report.Valid = verifyErr == nil

	return report, nil
}

func issuerName(cert *x509.Certificate) string {
	if len(cert.Issuer.Organization) > 0 && cert.Issuer.Organization[0] != "" {
		return cert.Issuer.Organization[0]
	}
	if cert.Issuer.CommonName != "" {
		return cert.Issuer.CommonName
	}
	return models.Unknown
}

var _ interfaces.TLSInspector = (*CertInspector)(nil)
