package core

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strings"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/interfaces"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"golang.org/x/net/publicsuffix"
)

// Resolver is the subset of *net.Resolver the DNS inspector needs
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// RecordInspector resolves address and mail-authentication records
type RecordInspector struct {
	resolver Resolver
	timeout  time.Duration
}

func NewRecordInspector(resolver Resolver, timeout time.Duration) *RecordInspector {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &RecordInspector{resolver: resolver, timeout: timeout}
}

// Inspect implements interfaces.DNSInspector. A missing record type is
// not an error; only a failed address lookup is reported.
func (d *RecordInspector) Inspect(ctx context.Context, host string) (models.DNSReport, error) {
	report := models.DNSReport{
		HostIP: models.Unknown,
		MX:     []models.MXRecord{},
		TXT:    []string{},
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	var addrErr error
	if addrs, err := d.resolver.LookupIPAddr(ctx, host); err != nil {
		addrErr = fmt.Errorf("resolve %s: %w", host, err)
	} else if ip := preferIPv4(addrs); ip != "" {
		report.HostIP = ip
	}

	if mxs, err := d.resolver.LookupMX(ctx, host); err == nil {
		for _, mx := range mxs {
			report.MX = append(report.MX, models.MXRecord{
				Host:     strings.TrimSuffix(mx.Host, "."),
				Priority: mx.Pref,
			})
		}
		sort.SliceStable(report.MX, func(i, j int) bool {
			return report.MX[i].Priority < report.MX[j].Priority
		})
	}

	if txts, err := d.resolver.LookupTXT(ctx, host); err == nil {
		report.TXT = append(report.TXT, txts...)
	}

	report.SPF = anyContains(report.TXT, "v=spf1")
	report.DMARC = anyContains(report.TXT, "v=DMARC1")
	if !report.DMARC {
		if txts, err := d.resolver.LookupTXT(ctx, dmarcName(host)); err == nil {
			report.DMARC = anyContains(txts, "v=DMARC1")
		}
	}

	return report, addrErr
}

// dmarcName is the _dmarc record of the registrable domain
func dmarcName(host string) string {
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		domain = host
	}
	return "_dmarc." + domain
}

func preferIPv4(addrs []net.IPAddr) string {
	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4.String()
		}
	}
	if len(addrs) > 0 {
		return addrs[0].IP.String()
	}
	return ""
}

func anyContains(values []string, needle string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err is a DNS "no such host" answer
func IsNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}

var _ interfaces.DNSInspector = (*RecordInspector)(nil)
