package synchealth

import (
	"context"
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/multiformats/go-multiaddr"
	manet "github.com/multiformats/go-multiaddr/net"
	"go.uber.org/zap"

	"github.com/spacemeshos/synchealth/common/types"
)

// ResolveAddress converts a peer address into host:port. Both multiaddrs
// (/ip4/10.0.0.1/tcp/2283) and host:port addresses are accepted.
func ResolveAddress(addr string) (string, error) {
	if strings.HasPrefix(addr, "/") {
		ma, err := multiaddr.NewMultiaddr(addr)
		if err != nil {
			return "", fmt.Errorf("parse multiaddr %q: %w", addr, err)
		}
		netAddr, err := manet.ToNetAddr(ma)
		if err != nil {
			return "", fmt.Errorf("convert multiaddr %q: %w", addr, err)
		}
		tcpAddr, ok := netAddr.(*net.TCPAddr)
		if !ok {
			return "", fmt.Errorf("multiaddr %q is not a tcp address", addr)
		}
		return tcpAddr.String(), nil
	}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("parse address %q: %w", addr, err)
	}
	if host == "" {
		return "", fmt.Errorf("address %q has no host", addr)
	}
	if p, err := strconv.ParseUint(port, 10, 16); err != nil || p == 0 {
		return "", fmt.Errorf("address %q has invalid port", addr)
	}
	return net.JoinHostPort(host, port), nil
}

// selectPeers samples up to MaxPeers peers known to the primary, excluding the primary
// itself, and resolves their addresses. Sampled peers that can't be resolved are dropped.
func (s *Syncer) selectPeers(ctx context.Context) ([]types.Peer, error) {
	known, err := s.primary.ListKnownPeers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list known peers: %w", err)
	}
	if s.cfg.Primary != "" {
		if self, err := ResolveAddress(s.cfg.Primary); err == nil {
			known = slices.DeleteFunc(known, func(peer types.Peer) bool {
				addr, err := ResolveAddress(peer.Address)
				return err == nil && addr == self
			})
		}
	}
	s.rng.Shuffle(len(known), func(i, j int) {
		known[i], known[j] = known[j], known[i]
	})
	if s.cfg.MaxPeers > 0 && len(known) > s.cfg.MaxPeers {
		known = known[:s.cfg.MaxPeers]
	}
	selected := make([]types.Peer, 0, len(known))
	for _, peer := range known {
		addr, err := ResolveAddress(peer.Address)
		if err != nil {
			s.logger.Debug("dropping unresolvable peer", zap.Object("peer", peer), zap.Error(err))
			continue
		}
		selected = append(selected, types.Peer{ID: peer.ID, Address: addr})
	}
	return selected, nil
}
