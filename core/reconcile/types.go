package reconcile

import "time"

// Counts tracks how many rows of one table a reconciliation inserted or updated.
type Counts struct {
	// Inserted is the number of new rows.
	Inserted int `json:"inserted"`

	// Updated is the number of existing rows refreshed in place.
	Updated int `json:"updated"`
}

// Add merges other into c.
func (c *Counts) Add(other Counts) {
	c.Inserted += other.Inserted
	c.Updated += other.Updated
}

// Total returns the number of rows written.
func (c Counts) Total() int {
	return c.Inserted + c.Updated
}

// Summary is the outcome of reconciling one device snapshot.
type Summary struct {
	// Host is the polled hostname.
	Host string `json:"host"`

	// EventID is the poll event stamped onto the device and its MACs.
	EventID int64 `json:"event_id"`

	// DeviceID is the resolved device identity.
	DeviceID int64 `json:"device_id"`

	Device     Counts `json:"device"`
	Interfaces Counts `json:"interfaces"`
	Vlans      Counts `json:"vlans"`
	Macs       Counts `json:"macs"`
	MacIPs     Counts `json:"macips"`

	// Duration is how long the reconciliation took.
	Duration time.Duration `json:"duration"`
}

// Total returns the number of rows written across all tables.
func (s Summary) Total() int {
	return s.Device.Total() + s.Interfaces.Total() + s.Vlans.Total() + s.Macs.Total() + s.MacIPs.Total()
}

// Outcome pairs a unit of work with its summary or error.
type Outcome struct {
	// Name identifies the snapshot (file name, object key or hostname).
	Name string `json:"name"`

	// Summary is set when reconciliation succeeded.
	Summary *Summary `json:"summary,omitempty"`

	// Err is set when reconciliation failed.
	Err error `json:"-"`

	// Error is the text of Err, filled in by NewReport.
	Error string `json:"error,omitempty"`
}

// Report aggregates the outcomes of a batch run.
type Report struct {
	Outcomes  []Outcome `json:"outcomes"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Rows      Counts    `json:"rows"`
}

// NewReport tallies outcomes.
func NewReport(outcomes []Outcome) Report {
	r := Report{Outcomes: outcomes}
	for i, o := range outcomes {
		if o.Err != nil {
			r.Outcomes[i].Error = o.Err.Error()
			r.Failed++
			continue
		}
		r.Succeeded++
		if o.Summary != nil {
			for _, c := range []Counts{o.Summary.Device, o.Summary.Interfaces, o.Summary.Vlans, o.Summary.Macs, o.Summary.MacIPs} {
				r.Rows.Add(c)
			}
		}
	}
	return r
}
