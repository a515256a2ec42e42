package models

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"topology-manager/core/utils"

	"github.com/goccy/go-json"
)

// Interface status codes reported in ifAdminStatus and ifOperStatus.
const (
	StatusUp   int64 = 1
	StatusDown int64 = 2
)

// Address family tables inside the snapshot's layer3 section.
const (
	TableIPv4 = "ipNetToMediaTable"
	TableIPv6 = "ipNetToPhysicalPhysAddress"
)

// Column limits of the topology tables. Longer values are cut or dropped while
// decoding so a single oversized attribute cannot fail the device transaction.
const (
	MaxNameLength = 255
	MaxMacLength  = 32
	MaxIPLength   = 64

	// maxTextLength keeps a TEXT column under 65535 bytes even with 4-byte runes.
	maxTextLength = 16383
)

// ErrNoHost is returned when a snapshot does not name the polled host.
var ErrNoHost = errors.New("snapshot has no misc.host")

// System holds the SNMPv2-MIB identity of the polled device.
type System struct {
	Name        *string
	Description *string
	ObjectID    *string
	Uptime      *int64
}

// Interface holds one layer1 entry. Absent or malformed attributes are nil.
type Interface struct {
	AdminStatus *int64
	OperStatus  *int64
	Speed       *int64
	Alias       *string
	Descr       *string
	Duplex      *int64
	Ethernet    bool
	NativeVlan  *int64
	Trunk       bool

	CdpDeviceID   *string
	CdpDevicePort *string
	CdpPlatform   *string

	LldpPortDesc      *string
	LldpSysCapEnabled *string
	LldpSysDesc       *string
	LldpSysName       *string

	Vlans []int64
	Macs  []string
}

// Snapshot is the decoded topology of one device at one poll.
type Snapshot struct {
	Host       string
	Timestamp  *int64
	System     System
	Interfaces map[int64]Interface

	// IPv4 and IPv6 map an IP address to the MAC it resolved to.
	IPv4 map[string]string
	IPv6 map[string]string
}

// ParseSnapshot decodes a snapshot document.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UnmarshalJSON decodes the poller document. Only a missing host or invalid JSON fails;
// any single attribute of the wrong type is dropped.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	host, _ := utils.ToString(lookup(raw, "misc", "host"))
	host = strings.TrimSpace(host)
	if host == "" {
		return ErrNoHost
	}

	*s = Snapshot{
		Host:      host,
		Timestamp: utils.Int64Ptr(lookup(raw, "misc", "timestamp")),
		System: System{
			Name:        clip(utils.StringPtr(lookup(raw, "system", "SNMPv2-MIB", "sysName", "0")), MaxNameLength),
			Description: clip(utils.StringPtr(lookup(raw, "system", "SNMPv2-MIB", "sysDescr", "0")), maxTextLength),
			ObjectID:    clip(utils.StringPtr(lookup(raw, "system", "SNMPv2-MIB", "sysObjectID", "0")), MaxNameLength),
			Uptime:      utils.Int64Ptr(lookup(raw, "system", "SNMPv2-MIB", "sysUpTime", "0")),
		},
		Interfaces: make(map[int64]Interface),
		IPv4:       addressTable(lookup(raw, "layer3", TableIPv4)),
		IPv6:       addressTable(lookup(raw, "layer3", TableIPv6)),
	}

	layer1, _ := raw["layer1"].(map[string]any)
	for key, value := range layer1 {
		ifindex, ok := utils.ToInt64(key)
		if !ok {
			continue
		}
		attrs, ok := value.(map[string]any)
		if !ok {
			continue
		}
		s.Interfaces[ifindex] = decodeInterface(attrs)
	}

	return nil
}

// Ifindexes returns the interface indexes in ascending order.
func (s *Snapshot) Ifindexes() []int64 {
	out := make([]int64, 0, len(s.Interfaces))
	for ifindex := range s.Interfaces {
		out = append(out, ifindex)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func decodeInterface(attrs map[string]any) Interface {
	name := func(key string) *string {
		return clip(utils.StringPtr(attrs[key]), MaxNameLength)
	}
	return Interface{
		AdminStatus:       utils.Int64Ptr(attrs["ifAdminStatus"]),
		OperStatus:        utils.Int64Ptr(attrs["ifOperStatus"]),
		Speed:             utils.Int64Ptr(attrs["ifSpeed"]),
		Alias:             name("ifAlias"),
		Descr:             name("ifDescr"),
		Duplex:            utils.Int64Ptr(attrs["jm_duplex"]),
		Ethernet:          utils.Truthy(attrs["jm_ethernet"]),
		NativeVlan:        utils.Int64Ptr(attrs["jm_nativevlan"]),
		Trunk:             utils.Truthy(attrs["jm_trunk"]),
		CdpDeviceID:       name("cdpCacheDeviceId"),
		CdpDevicePort:     name("cdpCacheDevicePort"),
		CdpPlatform:       name("cdpCachePlatform"),
		LldpPortDesc:      name("lldpRemPortDesc"),
		LldpSysCapEnabled: clip(joinedString(attrs["lldpRemSysCapEnabled"]), MaxNameLength),
		LldpSysDesc:       clip(utils.StringPtr(attrs["lldpRemSysDesc"]), maxTextLength),
		LldpSysName:       name("lldpRemSysName"),
		Vlans:             utils.ToInt64Slice(attrs["jm_vlan"]),
		Macs:              macList(attrs["jm_macs"]),
	}
}

// macList drops entries that cannot be a MAC address column value.
func macList(val any) []string {
	items := utils.ToStringSlice(val)
	if items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, mac := range items {
		if len(strings.TrimSpace(mac)) > MaxMacLength {
			continue
		}
		out = append(out, mac)
	}
	return out
}

// clip cuts val to at most n runes.
func clip(val *string, n int) *string {
	if val == nil || utf8.RuneCountInString(*val) <= n {
		return val
	}
	cut := string([]rune(*val)[:n])
	return &cut
}

// joinedString accepts either a scalar or a list of capability names.
func joinedString(val any) *string {
	if items := utils.ToStringSlice(val); items != nil {
		joined := strings.Join(items, ",")
		return &joined
	}
	return utils.StringPtr(val)
}

func addressTable(val any) map[string]string {
	table, ok := val.(map[string]any)
	if !ok || len(table) == 0 {
		return nil
	}
	out := make(map[string]string, len(table))
	for ip, mac := range table {
		addr, ok := utils.ToString(mac)
		if !ok || addr == "" || ip == "" || len(ip) > MaxIPLength || len(strings.TrimSpace(addr)) > MaxMacLength {
			continue
		}
		out[ip] = addr
	}
	return out
}

// lookup walks nested objects and returns nil as soon as a level is missing.
func lookup(m map[string]any, keys ...string) any {
	var cur any = m
	for _, k := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[k]
	}
	return cur
}
