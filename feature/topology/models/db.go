package models

import "time"

// SentinelOuiID is the identity of the vendor prefix row used when a MAC prefix is unknown.
const SentinelOuiID int64 = 1

// SentinelOrganization is the organization recorded on the sentinel vendor prefix row.
const SentinelOrganization = "Unknown"

// Event represents the 'event' table: one row per poll cycle.
type Event struct {
	IdxEvent   int64     `gorm:"column:idx_event;primaryKey;autoIncrement" json:"idx_event"`
	Name       string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Enabled    bool      `gorm:"column:enabled;not null" json:"enabled"`
	TsModified time.Time `gorm:"column:ts_modified;autoUpdateTime" json:"ts_modified"`
	TsCreated  time.Time `gorm:"column:ts_created;autoCreateTime" json:"ts_created"`
}

// TableName overrides the table name for Event.
func (Event) TableName() string {
	return "event"
}

// Device represents the 'device' table, keyed by hostname.
type Device struct {
	IdxDevice      int64     `gorm:"column:idx_device;primaryKey;autoIncrement"`
	IdxEvent       *int64    `gorm:"column:idx_event;index"`
	Hostname       string    `gorm:"column:hostname;type:varchar(255);not null;uniqueIndex:uk_device_hostname"`
	SysName        *string   `gorm:"column:sys_name;type:varchar(255)"`
	SysDescription *string   `gorm:"column:sys_description;type:text"`
	SysObjectid    *string   `gorm:"column:sys_objectid;type:varchar(255)"`
	SysUptime      *int64    `gorm:"column:sys_uptime"`
	LastPolled     *int64    `gorm:"column:last_polled"`
	Enabled        bool      `gorm:"column:enabled;not null"`
	TsModified     time.Time `gorm:"column:ts_modified;autoUpdateTime"`
	TsCreated      time.Time `gorm:"column:ts_created;autoCreateTime"`

	// Child rows; the foreign keys live on the child tables.
	Interfaces []L1Interface `gorm:"foreignKey:IdxDevice;references:IdxDevice;constraint:OnDelete:CASCADE"`
	Vlans      []Vlan        `gorm:"foreignKey:IdxDevice;references:IdxDevice;constraint:OnDelete:CASCADE"`
	MacIps     []MacIp       `gorm:"foreignKey:IdxDevice;references:IdxDevice;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Device.
func (Device) TableName() string {
	return "device"
}

// L1Interface represents the 'l1interface' table, keyed by (idx_device, ifindex).
type L1Interface struct {
	IdxL1Interface       int64     `gorm:"column:idx_l1interface;primaryKey;autoIncrement"`
	IdxDevice            int64     `gorm:"column:idx_device;not null;uniqueIndex:uk_l1interface_device_ifindex,priority:1"`
	Ifindex              int64     `gorm:"column:ifindex;not null;uniqueIndex:uk_l1interface_device_ifindex,priority:2"`
	Duplex               *int64    `gorm:"column:duplex"`
	Ethernet             bool      `gorm:"column:ethernet;not null"`
	Nativevlan           *int64    `gorm:"column:nativevlan"`
	Trunk                bool      `gorm:"column:trunk;not null"`
	Ifspeed              *int64    `gorm:"column:ifspeed"`
	Ifalias              *string   `gorm:"column:ifalias;type:varchar(255)"`
	Ifdescr              *string   `gorm:"column:ifdescr;type:varchar(255)"`
	Ifadminstatus        *int64    `gorm:"column:ifadminstatus"`
	Ifoperstatus         *int64    `gorm:"column:ifoperstatus"`
	Cdpcachedeviceid     *string   `gorm:"column:cdpcachedeviceid;type:varchar(255)"`
	Cdpcachedeviceport   *string   `gorm:"column:cdpcachedeviceport;type:varchar(255)"`
	Cdpcacheplatform     *string   `gorm:"column:cdpcacheplatform;type:varchar(255)"`
	Lldpremportdesc      *string   `gorm:"column:lldpremportdesc;type:varchar(255)"`
	Lldpremsyscapenabled *string   `gorm:"column:lldpremsyscapenabled;type:varchar(255)"`
	Lldpremsysdesc       *string   `gorm:"column:lldpremsysdesc;type:text"`
	Lldpremsysname       *string   `gorm:"column:lldpremsysname;type:varchar(255)"`
	TsIdle               int64     `gorm:"column:ts_idle;not null"`
	Enabled              bool      `gorm:"column:enabled;not null"`
	TsModified           time.Time `gorm:"column:ts_modified;autoUpdateTime"`
	TsCreated            time.Time `gorm:"column:ts_created;autoCreateTime"`
}

// TableName overrides the table name for L1Interface.
func (L1Interface) TableName() string {
	return "l1interface"
}

// Vlan represents the 'vlan' table, keyed by (idx_device, vlan).
type Vlan struct {
	IdxVlan    int64     `gorm:"column:idx_vlan;primaryKey;autoIncrement"`
	IdxDevice  int64     `gorm:"column:idx_device;not null;uniqueIndex:uk_vlan_device_vlan,priority:1"`
	Vlan       int64     `gorm:"column:vlan;not null;uniqueIndex:uk_vlan_device_vlan,priority:2"`
	Name       *string   `gorm:"column:name;type:varchar(255)"`
	State      int64     `gorm:"column:state;not null"`
	Enabled    bool      `gorm:"column:enabled;not null"`
	TsModified time.Time `gorm:"column:ts_modified;autoUpdateTime"`
	TsCreated  time.Time `gorm:"column:ts_created;autoCreateTime"`
}

// TableName overrides the table name for Vlan.
func (Vlan) TableName() string {
	return "vlan"
}

// Oui represents the 'oui' table: 6 character lowercase MAC vendor prefixes.
type Oui struct {
	IdxOui       int64     `gorm:"column:idx_oui;primaryKey;autoIncrement"`
	Oui          string    `gorm:"column:oui;type:varchar(6);not null;uniqueIndex:uk_oui_oui"`
	Organization *string   `gorm:"column:organization;type:varchar(255)"`
	Enabled      bool      `gorm:"column:enabled;not null"`
	TsModified   time.Time `gorm:"column:ts_modified;autoUpdateTime"`
	TsCreated    time.Time `gorm:"column:ts_created;autoCreateTime"`

	Macs   []Mac   `gorm:"foreignKey:IdxOui;references:IdxOui;constraint:OnDelete:CASCADE"`
	MacIps []MacIp `gorm:"foreignKey:IdxOui;references:IdxOui;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Oui.
func (Oui) TableName() string {
	return "oui"
}

// Mac represents the 'mac' table. Addresses are stored lowercase and are global across devices.
type Mac struct {
	IdxMac     int64     `gorm:"column:idx_mac;primaryKey;autoIncrement"`
	IdxOui     int64     `gorm:"column:idx_oui;not null;index"`
	IdxEvent   *int64    `gorm:"column:idx_event;index"`
	Mac        string    `gorm:"column:mac;type:varchar(32);not null;uniqueIndex:uk_mac_mac"`
	Enabled    bool      `gorm:"column:enabled;not null"`
	TsModified time.Time `gorm:"column:ts_modified;autoUpdateTime"`
	TsCreated  time.Time `gorm:"column:ts_created;autoCreateTime"`

	MacIps []MacIp `gorm:"foreignKey:IdxMac;references:IdxMac;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name for Mac.
func (Mac) TableName() string {
	return "mac"
}

// MacIp represents the 'macip' table, keyed by (idx_device, idx_mac, ip_).
type MacIp struct {
	IdxMacIp   int64     `gorm:"column:idx_macip;primaryKey;autoIncrement"`
	IdxDevice  int64     `gorm:"column:idx_device;not null;uniqueIndex:uk_macip_device_mac_ip,priority:1"`
	IdxMac     int64     `gorm:"column:idx_mac;not null;uniqueIndex:uk_macip_device_mac_ip,priority:2"`
	IP         string    `gorm:"column:ip_;type:varchar(64);not null;uniqueIndex:uk_macip_device_mac_ip,priority:3"`
	IdxOui     int64     `gorm:"column:idx_oui;not null;index"`
	Hostname   *string   `gorm:"column:hostname;type:varchar(255)"`
	Version    int64     `gorm:"column:version;not null"`
	Enabled    bool      `gorm:"column:enabled;not null"`
	TsModified time.Time `gorm:"column:ts_modified;autoUpdateTime"`
	TsCreated  time.Time `gorm:"column:ts_created;autoCreateTime"`
}

// TableName overrides the table name for MacIp.
func (MacIp) TableName() string {
	return "macip"
}

// All returns every topology model in dependency order, for migration and schema checks.
func All() []any {
	return []any{&Event{}, &Device{}, &Oui{}, &Mac{}, &L1Interface{}, &Vlan{}, &MacIp{}}
}
