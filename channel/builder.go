// Package channel parses Spark Connect connection strings and dials the
// gRPC channel the core client drives. It owns everything the execution
// core treats as an external collaborator: URI parsing, TLS selection,
// user-agent construction, and session-id minting.
package channel

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/apache/spark-connect-client-go/client"
	"github.com/apache/spark-connect-client-go/middleware"
	"github.com/apache/spark-connect-client-go/sparkpb"
)

const (
	defaultPort      = 15002
	defaultUserAgent = "spark-connect-client-go"
)

// Builder holds everything needed to dial a Spark Connect endpoint and
// construct a client.Client bound to one session.
type Builder struct {
	Host      string
	Port      int
	Token     string
	UserID    string
	UserAgent string
	SessionID string
	UseTLS    bool

	// TLSCredentials overrides the default TLS credentials when UseTLS is
	// set. Nil means grpc/credentials' system cert pool.
	TLSCredentials credentials.TransportCredentials
}

// Parse parses a connection string of the form
// "sc://host[:port][/;key=value[;key=value...]]" into a Builder. Recognized
// parameters: use_ssl, token, user_id, user_agent, session_id.
//
// A session id is minted (UUIDv4) when the connection string does not pin
// one; test harnesses that need a known session id pass session_id
// explicitly.
func Parse(connStr string) (*Builder, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("channel: invalid connection string %q: %w", connStr, err)
	}
	if u.Scheme != "sc" {
		return nil, fmt.Errorf("channel: unsupported scheme %q, expected \"sc\"", u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("channel: connection string %q has no host", connStr)
	}

	b := &Builder{
		Host:      u.Hostname(),
		Port:      defaultPort,
		UserAgent: defaultUserAgent,
		SessionID: uuid.NewString(),
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("channel: invalid port %q: %w", p, err)
		}
		b.Port = port
	}

	// Parameters are encoded as ";key=value" path segments, matching the
	// documented Spark Connect connection string grammar rather than a
	// "?key=value" query string.
	params := strings.TrimPrefix(u.Path, "/")
	for _, kv := range strings.Split(params, ";") {
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("channel: malformed parameter %q", kv)
		}
		key, val := parts[0], parts[1]
		switch key {
		case "use_ssl":
			b.UseTLS = val == "true"
		case "token":
			b.Token = val
		case "user_id":
			b.UserID = val
		case "user_agent":
			b.UserAgent = val
		case "session_id":
			b.SessionID = val
		default:
			return nil, fmt.Errorf("channel: unrecognized parameter %q", key)
		}
	}

	return b, nil
}

// dialOptions builds the grpc.DialOption set for this Builder: transport
// credentials plus the header-injection interceptors that stamp every
// outbound RPC with session and auth metadata.
func (b *Builder) dialOptions() []grpc.DialOption {
	var creds credentials.TransportCredentials
	if b.UseTLS {
		if b.TLSCredentials != nil {
			creds = b.TLSCredentials
		} else {
			creds = credentials.NewTLS(nil)
		}
	} else {
		creds = insecure.NewCredentials()
	}

	return []grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithUnaryInterceptor(middleware.UnaryInterceptor(b.SessionID, b.Token, b.UserAgent)),
		grpc.WithStreamInterceptor(middleware.StreamInterceptor(b.SessionID, b.Token, b.UserAgent)),
	}
}

// Dial opens a gRPC channel to the configured endpoint. The caller owns
// the returned connection and must Close it.
func (b *Builder) Dial(ctx context.Context) (*grpc.ClientConn, error) {
	addr := fmt.Sprintf("%s:%d", b.Host, b.Port)
	conn, err := grpc.NewClient(addr, b.dialOptions()...)
	if err != nil {
		return nil, fmt.Errorf("channel: dial %s failed: %w", addr, err)
	}
	return conn, nil
}

// Session bundles a client.Client with the *grpc.ClientConn it was built
// on, so a caller has a single handle to tear both down with.
type Session struct {
	*client.Client

	conn *grpc.ClientConn
}

// Close releases the session's last known operation, then closes the
// underlying connection. Both steps are attempted even if the first
// fails; their errors are combined rather than one shadowing the other,
// matching the teardown style of the otel-arrow exporter's stream close
// path this is grounded on.
func (s *Session) Close(ctx context.Context) error {
	return multierr.Append(s.Client.Close(ctx), s.conn.Close())
}

// Build dials the endpoint and wraps the resulting stub in a client.Client
// bound to this Builder's session id and user context.
func (b *Builder) Build(ctx context.Context, logger *zap.Logger) (*Session, error) {
	conn, err := b.Dial(ctx)
	if err != nil {
		return nil, err
	}
	stub := sparkpb.NewSparkConnectServiceClient(conn)

	userRef := b.UserID
	c := client.New(stub, client.Identity{
		SessionID: b.SessionID,
		UserAgent: b.UserAgent,
		UserContext: &sparkpb.UserContext{
			UserId:   userRef,
			UserName: userRef,
		},
	}, logger)

	return &Session{Client: c, conn: conn}, nil
}
