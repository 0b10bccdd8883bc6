package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scripted records every probe and bind and answers from fixed port sets.
type scripted struct {
	busy      map[int]bool
	bindFails map[int]bool
	probed    []int
	bound     []int
}

func (s *scripted) probe(_ context.Context, _ string, port int) error {
	s.probed = append(s.probed, port)
	if s.busy[port] {
		return ErrPortUnavailable
	}
	return nil
}

func (s *scripted) bind(_ context.Context, _ string, port int) (net.Listener, error) {
	s.bound = append(s.bound, port)
	if s.bindFails[port] {
		return nil, errors.New("address already in use")
	}
	return fakeListener{port: port}, nil
}

type fakeListener struct{ port int }

func (fakeListener) Accept() (net.Conn, error) { return nil, errors.New("closed") }
func (fakeListener) Close() error              { return nil }
func (l fakeListener) Addr() net.Addr          { return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: l.port} }

func newScripted(s *scripted, ports []int, out *bytes.Buffer) *Bootstrapper {
	return New("127.0.0.1", ports, zap.NewNop(), WithProbe(s.probe), WithBind(s.bind), WithOutput(out))
}

func TestListen_SkipsBusyAndStopsAtFirstFree(t *testing.T) {
	s := &scripted{busy: map[int]bool{1001: true, 1002: true}}
	var out bytes.Buffer

	ln, err := newScripted(s, []int{1001, 1002, 1003, 1004}, &out).Listen(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1003, ln.Addr().(*net.TCPAddr).Port)
	assert.Equal(t, []int{1001, 1002, 1003}, s.probed, "no port after the chosen one is tried")
	assert.Equal(t, []int{1003}, s.bound)
	assert.Contains(t, out.String(), "Searching for available port...")
	assert.Contains(t, out.String(), "Port 1001 is busy")
	assert.Contains(t, out.String(), "Port 1002 is busy")
	assert.Contains(t, out.String(), "Launching on port 1003...")
}

func TestListen_BindRaceMovesOn(t *testing.T) {
	s := &scripted{bindFails: map[int]bool{2001: true}}
	var out bytes.Buffer

	ln, err := newScripted(s, []int{2001, 2002}, &out).Listen(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2002, ln.Addr().(*net.TCPAddr).Port)
	assert.Equal(t, []int{2001, 2002}, s.bound)
	assert.Contains(t, out.String(), "Port 2001 failed: address already in use")
}

func TestListen_Exhausted(t *testing.T) {
	s := &scripted{
		busy:      map[int]bool{3001: true, 3002: true},
		bindFails: map[int]bool{3003: true},
	}
	var out bytes.Buffer

	ln, err := newScripted(s, []int{3001, 3002, 3003}, &out).Listen(context.Background())
	assert.Nil(t, ln)
	require.ErrorIs(t, err, ErrNoPortAvailable)
	assert.Equal(t, []int{3003}, s.bound)
	assert.Contains(t, out.String(), "All ports failed.")
}

func TestListen_EmptyCandidateList(t *testing.T) {
	var out bytes.Buffer
	_, err := newScripted(&scripted{}, nil, &out).Listen(context.Background())
	assert.ErrorIs(t, err, ErrNoPortAvailable)
}

func TestListen_CancelledContext(t *testing.T) {
	s := &scripted{}
	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newScripted(s, []int{4001}, &out).Listen(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.probed)
}

// freePort reserves an ephemeral port and releases it.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

// occupiedPort returns a port held by a listening socket for the test's lifetime.
func occupiedPort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	return ln.Addr().(*net.TCPAddr).Port
}

func TestListen_RealSockets(t *testing.T) {
	a, b := occupiedPort(t), occupiedPort(t)
	c := freePort(t)
	var out bytes.Buffer

	ln, err := New("127.0.0.1", []int{a, b, c}, zap.NewNop(), WithOutput(&out)).Listen(context.Background())
	require.NoError(t, err)
	defer ln.Close()

	assert.Equal(t, c, ln.Addr().(*net.TCPAddr).Port)
	assert.Contains(t, out.String(), "Port "+strconv.Itoa(a)+" is busy")
	assert.Contains(t, out.String(), "Port "+strconv.Itoa(b)+" is busy")
}

func TestListen_RealSocketsAllOccupied(t *testing.T) {
	ports := []int{occupiedPort(t), occupiedPort(t)}
	var out bytes.Buffer

	ln, err := New("127.0.0.1", ports, zap.NewNop(), WithOutput(&out)).Listen(context.Background())
	assert.Nil(t, ln)
	assert.ErrorIs(t, err, ErrNoPortAvailable)
}

func TestProbe_ReleasesPort(t *testing.T) {
	port := freePort(t)

	require.NoError(t, Probe(context.Background(), "127.0.0.1", port))

	ln, err := Bind(context.Background(), "127.0.0.1", port)
	require.NoError(t, err, "probe must not hold the socket")
	defer ln.Close()

	err = Probe(context.Background(), "127.0.0.1", port)
	assert.ErrorIs(t, err, ErrPortUnavailable)
}

func TestBrowserCommand(t *testing.T) {
	url := "http://localhost:7861"

	assert.Equal(t, []string{"open", url}, browserCommand("darwin", url).Args)
	assert.Equal(t, []string{"xdg-open", url}, browserCommand("linux", url).Args)
	assert.Equal(t, []string{"rundll32", "url.dll,FileProtocolHandler", url}, browserCommand("windows", url).Args)
}

func TestConsole_Lines(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Searching()
	c.Busy(7861)
	c.Launching(8080)
	c.Failed(8080, ErrPortUnavailable)
	c.Launched("http://127.0.0.1:8000")
	c.Exhausted()

	out := buf.String()
	assert.Contains(t, out, "Searching for available port...")
	assert.Contains(t, out, "Port 7861 is busy")
	assert.Contains(t, out, "Launching on port 8080...")
	assert.Contains(t, out, "Port 8080 failed: port unavailable")
	assert.Contains(t, out, "Successfully launched on http://127.0.0.1:8000")
	assert.Contains(t, out, "All ports failed.")
}
