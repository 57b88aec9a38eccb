package config

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/docker/cli/cli/connhelper"
	"github.com/docker/docker/client"
)

const userAgent = "Docker-Client/gamemon"

// NewClient builds a Docker client for "local", tcp://, unix:// or ssh:// hosts.
func NewClient(host string) (*client.Client, error) {
	opts, err := HostOptions(host)
	if err != nil {
		return nil, err
	}
	return client.NewClientWithOpts(opts...)
}

// HostOptions returns the client options for host, with API version
// negotiation and the gamemon user agent appended.
func HostOptions(host string) ([]client.Opt, error) {
	var opts []client.Opt
	switch {
	case host == "" || host == "local":
		opts = []client.Opt{client.FromEnv}
	case strings.HasPrefix(host, "ssh://"):
		helper, err := connhelper.GetConnectionHelper(host)
		if err != nil {
			return nil, err
		}
		opts = []client.Opt{
			// the tunnel runs over ssh, the HTTP client only sees the dialer
			client.WithHTTPClient(&http.Client{Transport: &http.Transport{DialContext: helper.Dialer}}),
			client.WithHost(helper.Host),
			client.WithDialContext(helper.Dialer),
		}
	case strings.HasPrefix(host, "tcp://"), strings.HasPrefix(host, "unix://"):
		opts = []client.Opt{client.WithHost(host), client.WithTLSClientConfigFromEnv()}
	default:
		return nil, fmt.Errorf("unsupported host type: %s", host)
	}

	return append(opts, client.WithAPIVersionNegotiation(), client.WithUserAgent(userAgent)), nil
}
