package models

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullSnapshot = `{
  "misc": {"host": "sw1", "timestamp": 1700000000},
  "system": {"SNMPv2-MIB": {
    "sysName": {"0": "sw1.example.org"},
    "sysDescr": {"0": "Cisco IOS"},
    "sysObjectID": {"0": ".1.3.6.1.4.1.9.1.1"},
    "sysUpTime": {"0": 123456}
  }},
  "layer1": {
    "1": {
      "ifAdminStatus": 1, "ifOperStatus": 2, "ifSpeed": 1000000000,
      "ifAlias": "uplink", "ifDescr": "Gi0/1",
      "jm_duplex": 2, "jm_ethernet": true, "jm_nativevlan": 1, "jm_trunk": 0,
      "cdpCacheDeviceId": "core1", "cdpCacheDevicePort": "Gi1/0/1", "cdpCachePlatform": "WS-C3850",
      "lldpRemPortDesc": "port 1", "lldpRemSysCapEnabled": ["bridge", "router"],
      "lldpRemSysDesc": "desc", "lldpRemSysName": "core1",
      "jm_vlan": [10, "20"], "jm_macs": ["AABBCCDDEEFF", "001122334455"]
    },
    "bogus": {"ifAdminStatus": 1},
    "2": "not an object"
  },
  "layer3": {
    "ipNetToMediaTable": {"10.0.0.1": "aabbccddeeff", "10.0.0.2": null},
    "ipNetToPhysicalPhysAddress": {"fe80::1": "001122334455"}
  }
}`

func TestParseSnapshot(t *testing.T) {
	snap, err := ParseSnapshot([]byte(fullSnapshot))
	require.NoError(t, err)

	assert.Equal(t, "sw1", snap.Host)
	require.NotNil(t, snap.Timestamp)
	assert.Equal(t, int64(1700000000), *snap.Timestamp)
	assert.Equal(t, "sw1.example.org", *snap.System.Name)
	assert.Equal(t, "Cisco IOS", *snap.System.Description)
	assert.Equal(t, ".1.3.6.1.4.1.9.1.1", *snap.System.ObjectID)
	assert.Equal(t, int64(123456), *snap.System.Uptime)

	require.Len(t, snap.Interfaces, 1)
	iface := snap.Interfaces[1]
	assert.Equal(t, StatusUp, *iface.AdminStatus)
	assert.Equal(t, StatusDown, *iface.OperStatus)
	assert.Equal(t, int64(1000000000), *iface.Speed)
	assert.Equal(t, "Gi0/1", *iface.Descr)
	assert.True(t, iface.Ethernet)
	assert.False(t, iface.Trunk)
	assert.Equal(t, "bridge,router", *iface.LldpSysCapEnabled)
	assert.Equal(t, []int64{10, 20}, iface.Vlans)
	assert.Equal(t, []string{"AABBCCDDEEFF", "001122334455"}, iface.Macs)

	assert.Equal(t, map[string]string{"10.0.0.1": "aabbccddeeff"}, snap.IPv4)
	assert.Equal(t, map[string]string{"fe80::1": "001122334455"}, snap.IPv6)
	assert.Equal(t, []int64{1}, snap.Ifindexes())
}

func TestParseSnapshot_MalformedAttributes(t *testing.T) {
	doc := `{
	  "misc": {"host": "sw2", "timestamp": "yesterday"},
	  "system": {"SNMPv2-MIB": {"sysName": "flat", "sysUpTime": {"0": [1]}}},
	  "layer1": {"5": {"ifAdminStatus": "up", "ifSpeed": 1.5, "ifAlias": {"x": 1}, "jm_vlan": 7, "jm_macs": null}},
	  "layer3": []
	}`

	snap, err := ParseSnapshot([]byte(doc))
	require.NoError(t, err)

	assert.Nil(t, snap.Timestamp)
	assert.Nil(t, snap.System.Name)
	assert.Nil(t, snap.System.Uptime)

	iface := snap.Interfaces[5]
	assert.Nil(t, iface.AdminStatus)
	assert.Nil(t, iface.OperStatus)
	assert.Nil(t, iface.Speed)
	assert.Nil(t, iface.Alias)
	assert.Nil(t, iface.Vlans)
	assert.Nil(t, iface.Macs)
	assert.Nil(t, snap.IPv4)
	assert.Nil(t, snap.IPv6)
}

func TestParseSnapshot_OversizedAttributes(t *testing.T) {
	long := strings.Repeat("é", 300)
	doc := fmt.Sprintf(`{
	  "misc": {"host": "sw3"},
	  "system": {"SNMPv2-MIB": {"sysName": {"0": %[1]q}, "sysDescr": {"0": %[1]q}}},
	  "layer1": {"1": {"ifAlias": %[1]q, "lldpRemSysDesc": %[1]q, "jm_macs": ["aabbccddeeff", %[2]q]}},
	  "layer3": {"ipNetToMediaTable": {"10.0.0.1": "aabbccddeeff", %[3]q: "001122334455", "10.0.0.2": %[2]q}}
	}`, long, strings.Repeat("a", MaxMacLength+1), strings.Repeat("1", MaxIPLength+1))

	snap, err := ParseSnapshot([]byte(doc))
	require.NoError(t, err)

	require.NotNil(t, snap.System.Name)
	assert.Equal(t, MaxNameLength, utf8.RuneCountInString(*snap.System.Name))
	assert.Equal(t, long, *snap.System.Description)

	iface := snap.Interfaces[1]
	require.NotNil(t, iface.Alias)
	assert.Equal(t, strings.Repeat("é", MaxNameLength), *iface.Alias)
	assert.Equal(t, long, *iface.LldpSysDesc)
	assert.Equal(t, []string{"aabbccddeeff"}, iface.Macs)

	assert.Equal(t, map[string]string{"10.0.0.1": "aabbccddeeff"}, snap.IPv4)
}

func TestParseSnapshot_Errors(t *testing.T) {
	_, err := ParseSnapshot([]byte(`{"misc": {}}`))
	assert.ErrorIs(t, err, ErrNoHost)

	_, err = ParseSnapshot([]byte(`{"misc": {"host": "  "}}`))
	assert.ErrorIs(t, err, ErrNoHost)

	_, err = ParseSnapshot([]byte(`not json`))
	assert.Error(t, err)
}

func TestAll(t *testing.T) {
	names := make([]string, 0)
	for _, m := range All() {
		names = append(names, m.(interface{ TableName() string }).TableName())
	}
	assert.Equal(t, []string{"event", "device", "oui", "mac", "l1interface", "vlan", "macip"}, names)
}
