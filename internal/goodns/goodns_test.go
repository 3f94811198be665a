package goodns

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startServer serves the given A records over udp and tcp on loopback.
func startServer(t *testing.T, records map[string][]string) (udpAddr, tcpAddr string) {
	t.Helper()
	mux := dns.NewServeMux()
	mux.HandleFunc(".", func(w dns.ResponseWriter, req *dns.Msg) {
		m := new(dns.Msg)
		m.SetReply(req)
		ips, ok := records[req.Question[0].Name]
		if !ok {
			m.SetRcode(req, dns.RcodeNameError)
		}
		for _, ip := range ips {
			m.Answer = append(m.Answer, &dns.A{
				Hdr: dns.RR_Header{Name: req.Question[0].Name, Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 60},
				A:   net.ParseIP(ip),
			})
		}
		_ = w.WriteMsg(m)
	})

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	udpUp, tcpUp := make(chan struct{}), make(chan struct{})
	udp := &dns.Server{PacketConn: pc, Handler: mux, NotifyStartedFunc: func() { close(udpUp) }}
	tcp := &dns.Server{Listener: l, Handler: mux, NotifyStartedFunc: func() { close(tcpUp) }}
	go func() { _ = udp.ActivateAndServe() }()
	go func() { _ = tcp.ActivateAndServe() }()
	<-udpUp
	<-tcpUp
	t.Cleanup(func() {
		_ = udp.Shutdown()
		_ = tcp.Shutdown()
	})
	return pc.LocalAddr().String(), l.Addr().String()
}

func TestLookupA(t *testing.T) {
	udpAddr, tcpAddr := startServer(t, map[string][]string{
		"sentinel.redis.svc.": {"10.0.0.1", "10.0.0.2", "10.0.0.1"},
		"empty.redis.svc.":    {},
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, r := range []*Resolver{{Server: udpAddr}, {Server: tcpAddr, UseTCP: true}} {
		ips, err := r.LookupA(ctx, "sentinel.redis.svc")
		require.NoError(t, err)
		require.Len(t, ips, 2)
		assert.Equal(t, "10.0.0.1", ips[0].String())
		assert.Equal(t, "10.0.0.2", ips[1].String())

		_, err = r.LookupA(ctx, "empty.redis.svc")
		assert.ErrorIs(t, err, ErrNoRecords)

		_, err = r.LookupA(ctx, "missing.redis.svc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "NXDOMAIN")
	}
}

func TestResolverServerAddress(t *testing.T) {
	addr, err := (&Resolver{Server: "10.1.2.3"}).server()
	require.NoError(t, err)
	assert.Equal(t, "10.1.2.3:53", addr)

	addr, err = (&Resolver{Server: "10.1.2.3:5353"}).server()
	require.NoError(t, err)
	assert.Equal(t, "10.1.2.3:5353", addr)
}
