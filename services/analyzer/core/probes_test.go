package core

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/RuvinSL/seo-analyzer/pkg/httpclient"
	"github.com/RuvinSL/seo-analyzer/pkg/logger"
	"github.com/RuvinSL/seo-analyzer/pkg/mocks"
	"github.com/RuvinSL/seo-analyzer/pkg/models"
	"github.com/RuvinSL/seo-analyzer/pkg/testutil"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *httpclient.Client {
	return httpclient.New(5*time.Second, logger.Discard())
}

func sitemapXML(locs int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	for i := 0; i < locs; i++ {
		fmt.Fprintf(&b, "<url><loc>https://example.com/p%d</loc></url>", i)
	}
	b.WriteString("</urlset>")
	return b.String()
}

func TestCrawlProbe_Probe(t *testing.T) {
	tests := []struct {
		name           string
		routes         map[string]string
		expectedRobots models.RobotsStatus
		expectedPath   string
		expectedFound  bool
		expectedCount  int
		expectError    bool
	}{
		{
			name: "blocks all and declares a sitemap",
			routes: map[string]string{
				"/robots.txt":        "User-agent: *\nDisallow: /\nSitemap: {{host}}/custom-map.xml\n",
				"/custom-map.xml":    sitemapXML(12),
				"/sitemap.xml":       sitemapXML(3),
				"/sitemap_index.xml": sitemapXML(1),
			},
			expectedRobots: models.RobotsBlockedAll,
			expectedPath:   "/custom-map.xml",
			expectedFound:  true,
			expectedCount:  12,
		},
		{
			name: "partial disallow is allowed",
			routes: map[string]string{
				"/robots.txt":  "User-agent: *\nDisallow: /admin\n",
				"/sitemap.xml": sitemapXML(2),
			},
			expectedRobots: models.RobotsAllowed,
			expectedPath:   "/sitemap.xml",
			expectedFound:  true,
			expectedCount:  2,
		},
		{
			name: "missing robots falls through to conventional sitemaps",
			routes: map[string]string{
				"/wp-sitemap.xml": `<?xml version="1.0"?><sitemapindex><sitemap><loc>https://example.com/a.xml</loc></sitemap></sitemapindex>`,
			},
			expectedRobots: models.RobotsMissing,
			expectedPath:   "/wp-sitemap.xml",
			expectedFound:  true,
			expectedCount:  1,
			expectError:    true,
		},
		{
			name: "soft 404 html is not a sitemap",
			routes: map[string]string{
				"/robots.txt":  "User-agent: *\nAllow: /\n",
				"/sitemap.xml": "<html><body>Not found</body></html>",
			},
			expectedRobots: models.RobotsAllowed,
			expectedFound:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var server *httptest.Server
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, ok := tt.routes[r.URL.Path]
				if !ok {
					http.NotFound(w, r)
					return
				}
				w.Write([]byte(strings.ReplaceAll(body, "{{host}}", server.URL)))
			}))
			defer server.Close()

			site, err := url.Parse(server.URL + "/some/page")
			require.NoError(t, err)

			probe := NewCrawlProbe(testClient(), logger.Discard(), 2*time.Second, 2*time.Second)
			report, err := probe.Probe(context.Background(), site)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedRobots, report.RobotsStatus)
			assert.Equal(t, tt.expectedFound, report.SitemapFound)
			assert.Equal(t, tt.expectedCount, report.SitemapPageCount)
			if tt.expectedPath != "" {
				assert.Equal(t, server.URL+tt.expectedPath, report.SitemapURL)
			} else {
				assert.Empty(t, report.SitemapURL)
			}
		})
	}
}

func TestClassifyRobots(t *testing.T) {
	assert.Equal(t, models.RobotsBlockedAll, classifyRobots("User-agent: *\r\nDisallow: /\r\n"))
	assert.Equal(t, models.RobotsBlockedAll, classifyRobots("user-agent: *\ndisallow: /"))
	assert.Equal(t, models.RobotsAllowed, classifyRobots("User-agent: *\nDisallow: /private/"))
	assert.Equal(t, models.RobotsAllowed, classifyRobots("User-agent: Googlebot\nDisallow: /"))
	assert.Equal(t, models.RobotsAllowed, classifyRobots(""))
}

func TestBatchLinkChecker_CheckLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/moved":
			w.WriteHeader(http.StatusNoContent)
		case "/gone":
			w.WriteHeader(http.StatusGone)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	links := []models.Link{
		{URL: server.URL + "/ok"},
		{URL: server.URL + "/gone"},
		{URL: server.URL + "/moved"},
		{URL: server.URL + "/broken"},
		{URL: "http://127.0.0.1:1/unreachable"},
		{URL: server.URL + "/ok?again"},
		{URL: server.URL + "/gone?again"},
	}

	metrics := &testutil.MetricsRecorder{}
	checker := NewBatchLinkChecker(testClient(), logger.Discard(), metrics, 5, 2*time.Second)

	statuses, err := checker.CheckLinks(context.Background(), links)
	require.NoError(t, err)
	require.Len(t, statuses, len(links))

	for i, s := range statuses {
		assert.Equal(t, links[i].URL, s.Link.URL, "results keep input order")
	}
	assert.True(t, statuses[0].Accessible)
	assert.Equal(t, http.StatusGone, statuses[1].StatusCode)
	assert.False(t, statuses[1].Accessible)
	assert.True(t, statuses[2].Accessible)
	assert.False(t, statuses[3].Accessible)
	assert.False(t, statuses[4].Accessible)
	assert.NotEmpty(t, statuses[4].Error)

	assert.Equal(t, []string{
		server.URL + "/gone",
		server.URL + "/broken",
		"http://127.0.0.1:1/unreachable",
		server.URL + "/gone?again",
	}, brokenLinks(statuses))
	assert.Len(t, metrics.LinkChecks, len(links))
}

func TestBatchLinkChecker_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	client.EXPECT().Head(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string) (*models.HTTPResponse, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	links := make([]models.Link, 7)
	for i := range links {
		links[i] = models.Link{URL: fmt.Sprintf("https://example.com/%d", i)}
	}

	checker := NewBatchLinkChecker(client, logger.Discard(), &testutil.MetricsRecorder{}, 5, time.Second)
	statuses, err := checker.CheckLinks(ctx, links)

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, statuses, 7)
	for _, s := range statuses {
		assert.False(t, s.Accessible)
		assert.NotEmpty(t, s.Error)
	}
}

func TestHeaderAuditor_Audit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Strict-Transport-Security", "max-age=63072000")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Server", "nginx")
		w.Header().Add("Set-Cookie", "session=abc; HttpOnly")
		w.Header().Add("Set-Cookie", "pref=1; Secure; SameSite=Lax")
	}))
	defer server.Close()

	auditor := NewHeaderAuditor(testClient(), 3*time.Second)
	report, err := auditor.Audit(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, models.SecurityHeaders{
		XSS:           false,
		ContentType:   true,
		FrameOptions:  true,
		HSTS:          true,
		CookieCount:   2,
		SecureCookies: true,
		Server:        "nginx",
	}, report)
}

func TestHeaderAuditor_FailureReturnsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	client.EXPECT().Head(gomock.Any(), "https://example.com").Return(nil, errors.New("connection refused"))

	report, err := NewHeaderAuditor(client, time.Second).Audit(context.Background(), "https://example.com")

	assert.Error(t, err)
	assert.Equal(t, models.SecurityHeaders{}, report)
}

func tlsTestInspector(t *testing.T, server *httptest.Server, now time.Time) (*CertInspector, string) {
	t.Helper()
	host, port, err := net.SplitHostPort(server.Listener.Addr().String())
	require.NoError(t, err)

	roots := x509.NewCertPool()
	roots.AddCert(server.Certificate())

	inspector := NewCertInspector(2 * time.Second)
	inspector.port = port
	inspector.roots = roots
	inspector.now = func() time.Time { return now }
	return inspector, host
}

func TestCertInspector_Inspect(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	t.Run("trusted chain", func(t *testing.T) {
		inspector, host := tlsTestInspector(t, server, time.Now())
		report, err := inspector.Inspect(context.Background(), host)

		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Equal(t, "Acme Co", report.Issuer)
		assert.Greater(t, report.DaysRemaining, 0)
		require.NotNil(t, report.ExpiresAt)
	})

	t.Run("expired certificate", func(t *testing.T) {
		inspector, host := tlsTestInspector(t, server, time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC))
		report, err := inspector.Inspect(context.Background(), host)

		require.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Less(t, report.DaysRemaining, 0)
		assert.Equal(t, "Acme Co", report.Issuer)
	})

	t.Run("untrusted root", func(t *testing.T) {
		inspector, host := tlsTestInspector(t, server, time.Now())
		inspector.roots = x509.NewCertPool()
		report, err := inspector.Inspect(context.Background(), host)

		require.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Greater(t, report.DaysRemaining, 0)
	})
}

func TestCertInspector_HandshakeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	host, port, err := net.SplitHostPort(server.Listener.Addr().String())
	require.NoError(t, err)

	inspector := NewCertInspector(time.Second)
	inspector.port = port

	report, err := inspector.Inspect(context.Background(), host)

	assert.Error(t, err)
	assert.Equal(t, models.TLSReport{Issuer: models.Unknown}, report)
}

type fakeResolver struct {
	addrs   []net.IPAddr
	addrErr error
	mx      []*net.MX
	txt     map[string][]string
}

func (f *fakeResolver) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	return f.addrs, f.addrErr
}

func (f *fakeResolver) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	if f.mx == nil {
		return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
	}
	return f.mx, nil
}

func (f *fakeResolver) LookupTXT(ctx context.Context, name string) ([]string, error) {
	txt, ok := f.txt[name]
	if !ok {
		return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
	}
	return txt, nil
}

func TestRecordInspector_Inspect(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		resolver *fakeResolver
		expected models.DNSReport
		wantErr  bool
	}{
		{
			name: "full records with registrable-domain dmarc",
			host: "www.shop.example.co.uk",
			resolver: &fakeResolver{
				addrs: []net.IPAddr{{IP: net.ParseIP("2001:db8::1")}, {IP: net.ParseIP("203.0.113.7")}},
				mx: []*net.MX{
					{Host: "mx2.example.co.uk.", Pref: 20},
					{Host: "mx1.example.co.uk.", Pref: 10},
				},
				txt: map[string][]string{
					"www.shop.example.co.uk": {"v=spf1 include:_spf.example.net ~all", "google-site-verification=abc"},
					"_dmarc.example.co.uk":   {"v=DMARC1; p=reject"},
				},
			},
			expected: models.DNSReport{
				HostIP: "203.0.113.7",
				MX: []models.MXRecord{
					{Host: "mx1.example.co.uk", Priority: 10},
					{Host: "mx2.example.co.uk", Priority: 20},
				},
				TXT:   []string{"v=spf1 include:_spf.example.net ~all", "google-site-verification=abc"},
				SPF:   true,
				DMARC: true,
			},
		},
		{
			name: "ipv6 only and no mail records",
			host: "example.org",
			resolver: &fakeResolver{
				addrs: []net.IPAddr{{IP: net.ParseIP("2001:db8::2")}},
			},
			expected: models.DNSReport{
				HostIP: "2001:db8::2",
				MX:     []models.MXRecord{},
				TXT:    []string{},
			},
		},
		{
			name: "unresolvable host keeps defaults",
			host: "nope.invalid",
			resolver: &fakeResolver{
				addrErr: &net.DNSError{Err: "no such host", Name: "nope.invalid", IsNotFound: true},
			},
			expected: models.DNSReport{
				HostIP: models.Unknown,
				MX:     []models.MXRecord{},
				TXT:    []string{},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inspector := NewRecordInspector(tt.resolver, time.Second)
			report, err := inspector.Inspect(context.Background(), tt.host)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsNotFound(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, report)
		})
	}
}

func TestDmarcName(t *testing.T) {
	assert.Equal(t, "_dmarc.example.com", dmarcName("www.example.com"))
	assert.Equal(t, "_dmarc.example.co.uk", dmarcName("a.b.example.co.uk"))
	assert.Equal(t, "_dmarc.localhost", dmarcName("localhost"))
}
