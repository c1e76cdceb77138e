// Package e2e drives a running party-lab server through its HTTP and gRPC APIs.
// The suites skip unless PARTY_GRPC_ADDR and PARTY_HTTP_ADDR are set.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"party-lab/infrastructure/grpc/client"
	"strings"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

type BaseSuite struct {
	suite.Suite
	Config Config
	HTTP   *http.Client
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.GRPCAddr == "" || s.Config.HTTPAddr == "" {
		s.T().Skip("PARTY_GRPC_ADDR and PARTY_HTTP_ADDR are required for end to end tests")
	}
	s.HTTP = &http.Client{Timeout: 10 * time.Second}
}

func (s *BaseSuite) header(t *testing.T, name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)
}

// WithParty provides a logged-out gRPC client within a contextual test step
func (s *BaseSuite) WithParty(name string, fn func(ctx context.Context, c *client.PartyClient)) {
	t := s.T()
	s.header(t, name)

	c, err := client.Dial(s.Config.GRPCAddr, grpc.WithUnaryInterceptor(
		func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			start := time.Now()
			err := invoker(ctx, method, req, reply, cc, opts...)

			logBuilder := strings.Builder{}
			fmt.Fprintf(&logBuilder, "GRPC %s [%s] in %v", method, status.Code(err), time.Since(start))
			if s.Config.DebugJSON {
				fmt.Fprintln(&logBuilder, "\nREQUEST:")
				fmt.Fprintln(&logBuilder, indent(req))
				if err != nil {
					fmt.Fprintln(&logBuilder, "ERROR:", err)
				} else {
					fmt.Fprintln(&logBuilder, "RESPONSE:")
					fmt.Fprintln(&logBuilder, indent(reply))
				}
			}
			t.Log(logBuilder.String())
			return err
		}))
	s.Require().NoError(err, "Failed to connect to gRPC server at "+s.Config.GRPCAddr)
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	fn(ctx, c)
}

// PostJSON sends body to the HTTP API and decodes the answer into out when given.
func (s *BaseSuite) PostJSON(path, token string, body, out any) int {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost, "http://"+s.Config.HTTPAddr+path, bytes.NewReader(payload))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.HTTP.Do(req)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func indent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
