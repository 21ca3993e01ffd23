// Package catalog lists every RDS operation rdsctl exposes together with
// its field-mapping table, result selector and paging description.
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rdsctl/rdsctl/internal/adapter"
)

// Group is a set of operations over one resource noun.
type Group struct {
	ID         string
	Title      string
	Operations []adapter.Descriptor
}

var (
	indexOnce sync.Once
	index     map[string]adapter.Descriptor
	indexErr  error
)

// Groups returns the operation groups in display order.
func Groups() []Group {
	return []Group{
		{ID: "instances", Title: "DB Instances", Operations: instances},
		{ID: "clusters", Title: "DB Clusters", Operations: clusters},
		{ID: "snapshots", Title: "Snapshots", Operations: snapshots},
		{ID: "parameter-groups", Title: "Parameter Groups", Operations: parameterGroups},
		{ID: "subnet-groups", Title: "Subnet Groups", Operations: subnetGroups},
		{ID: "security-groups", Title: "Security Groups", Operations: securityGroups},
		{ID: "events", Title: "Events and Subscriptions", Operations: events},
		{ID: "global-clusters", Title: "Global Clusters", Operations: globalClusters},
		{ID: "tags", Title: "Tags", Operations: tagging},
		{ID: "engine", Title: "Engines and Logs", Operations: engine},
	}
}

// All returns every operation sorted by name.
func All() []adapter.Descriptor {
	var all []adapter.Descriptor
	for _, g := range Groups() {
		all = append(all, g.Operations...)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Describe().Name < all[j].Describe().Name
	})
	return all
}

// Validate checks every row and rejects duplicate operation names.
func Validate() error {
	indexOnce.Do(buildIndex)
	return indexErr
}

// Lookup returns the operation called name.
func Lookup(name string) (adapter.Descriptor, bool) {
	indexOnce.Do(buildIndex)
	d, ok := index[name]
	return d, ok
}

func buildIndex() {
	index = make(map[string]adapter.Descriptor)
	for _, d := range All() {
		name := d.Describe().Name
		if _, dup := index[name]; dup {
			indexErr = fmt.Errorf("duplicate operation %s", name)
			return
		}
		if err := d.Validate(); err != nil {
			indexErr = err
			return
		}
		index[name] = d
	}
}

func required(name string) adapter.Param {
	return adapter.Param{Name: name, Field: name, Kind: adapter.KindString, Required: true}
}

func optional(name string) adapter.Param {
	return adapter.Param{Name: name, Field: name, Kind: adapter.KindString}
}

func typed(name string, kind adapter.Kind) adapter.Param {
	return adapter.Param{Name: name, Field: name, Kind: kind}
}

// mapped binds a parameter whose name differs from the request field,
// including dotted paths into nested option structs.
func mapped(name, field string, kind adapter.Kind) adapter.Param {
	return adapter.Param{Name: name, Field: field, Kind: kind}
}

func mandatory(p adapter.Param) adapter.Param {
	p.Required = true
	return p
}

func describe(p adapter.Param, usage string) adapter.Param {
	p.Usage = usage
	return p
}

func tags() adapter.Param {
	return describe(mapped("Tag", "Tags", adapter.KindTags), "tags to attach, as Key=Value")
}

func filters() adapter.Param {
	return describe(mapped("Filter", "Filters", adapter.KindFilters), "filters, as Name=value1,value2")
}

// listParams are the marker and page size parameters shared by every
// Describe call.
func listParams() []adapter.Param {
	return []adapter.Param{
		filters(),
		describe(optional("Marker"), "continuation marker from a previous call"),
		describe(mapped("MaxRecord", "MaxRecords", adapter.KindInt), "page size (20-100)"),
	}
}

func paged() *adapter.Paging {
	return &adapter.Paging{
		InputMarker:  "Marker",
		OutputMarker: "Marker",
		PageSize:     "MaxRecords",
		MinPageSize:  20,
		MaxPageSize:  100,
	}
}

func params(ps ...adapter.Param) []adapter.Param {
	return ps
}
