package pricing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go-resale-tracker/internal/model"
)

// Totals are the running sums a rollup accumulates per group.
type Totals struct {
	Quantity      int     `json:"quantity"`
	JPYTotal      float64 `json:"jpy_total"`
	DomesticTotal float64 `json:"domestic_total"`
	HandlingTotal float64 `json:"handling_total"`
	RevenueTotal  float64 `json:"revenue_total"`
}

func (t *Totals) add(f LineFigures) {
	t.Quantity += f.Quantity
	t.JPYTotal += f.JPYTotal
	t.DomesticTotal += f.DomesticTotal
	t.HandlingTotal += f.HandlingTotal
	t.RevenueTotal += f.RevenueTotal
}

// ValuedLine pairs an order line with its resolved product and figures.
type ValuedLine struct {
	Line    model.OrderLine `json:"line"`
	Product model.Product   `json:"product"`
	Figures LineFigures     `json:"figures"`
}

// GroupKey selects the grouping key and display label for one resolved
// line. Collate marks groupings ordered by label under the business locale
// (buyer names); code-keyed groupings sort byte-wise by key.
type GroupKey struct {
	Select  func(line model.OrderLine, p model.Product) (key, label string)
	Collate bool
}

// ByBuyer groups by buyer display name, collated ascending.
func ByBuyer() GroupKey {
	return GroupKey{
		Select: func(line model.OrderLine, _ model.Product) (string, string) {
			return line.Buyer, line.Buyer
		},
		Collate: true,
	}
}

// ByProduct groups by composite product code, lexicographic ascending.
func ByProduct() GroupKey {
	return GroupKey{
		Select: func(line model.OrderLine, p model.Product) (string, string) {
			key := line.CategoryID + "-" + line.ProductID
			return key, p.Name + " (" + key + ")"
		},
	}
}

// ByCategory groups by category code, lexicographic ascending. The category
// snapshot supplies display names.
func ByCategory(categories []model.Category) GroupKey {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return GroupKey{
		Select: func(line model.OrderLine, _ model.Product) (string, string) {
			return line.CategoryID, line.CategoryID + " " + names[line.CategoryID]
		},
	}
}

// Group is one node of a rollup. With a secondary key the lines live on the
// subgroups and this node's totals equal the sum of its subgroups' totals.
type Group struct {
	Key       string       `json:"key"`
	Label     string       `json:"label"`
	Totals    Totals       `json:"totals"`
	Lines     []ValuedLine `json:"lines,omitempty"`
	Subgroups []Group      `json:"subgroups,omitempty"`
}

// Rollup is a sorted grouped aggregate with a grand total equal to the sum
// of all resolved line totals.
type Rollup struct {
	Groups     []Group `json:"groups"`
	GrandTotal Totals  `json:"grand_total"`
}

type rollupNode struct {
	group    Group
	children map[string]*rollupNode
	childSeq []*rollupNode
}

// AggregateByKey folds the lines once into a one- or two-level grouped
// rollup. Lines whose product reference dangles are skipped silently and
// appear in neither the groups nor the grand total. Ordering is
// deterministic: groups sort per their GroupKey, ties keep insertion order.
func AggregateByKey(lines []model.OrderLine, lookup ProductLookup, primary GroupKey, secondary *GroupKey) Rollup {
	nodes := make(map[string]*rollupNode)
	var seq []*rollupNode
	var grand Totals

	for _, line := range lines {
		p := lookup(line.CategoryID, line.ProductID)
		if p == nil {
			continue
		}
		fig := valuate(line, *p)
		valued := ValuedLine{Line: line, Product: *p, Figures: fig}

		key, label := primary.Select(line, *p)
		n := nodes[key]
		if n == nil {
			n = &rollupNode{group: Group{Key: key, Label: label}}
			nodes[key] = n
			seq = append(seq, n)
		}
		n.group.Totals.add(fig)
		grand.add(fig)

		if secondary == nil {
			n.group.Lines = append(n.group.Lines, valued)
			continue
		}
		subKey, subLabel := secondary.Select(line, *p)
		if n.children == nil {
			n.children = make(map[string]*rollupNode)
		}
		c := n.children[subKey]
		if c == nil {
			c = &rollupNode{group: Group{Key: subKey, Label: subLabel}}
			n.children[subKey] = c
			n.childSeq = append(n.childSeq, c)
		}
		c.group.Totals.add(fig)
		c.group.Lines = append(c.group.Lines, valued)
	}

	groups := make([]Group, 0, len(seq))
	for _, n := range seq {
		if secondary != nil {
			n.group.Subgroups = collectGroups(n.childSeq, *secondary)
		}
		groups = append(groups, n.group)
	}
	sortGroups(groups, primary)

	return Rollup{Groups: groups, GrandTotal: grand}
}

func collectGroups(seq []*rollupNode, key GroupKey) []Group {
	out := make([]Group, 0, len(seq))
	for _, n := range seq {
		out = append(out, n.group)
	}
	sortGroups(out, key)
	return out
}

func sortGroups(groups []Group, key GroupKey) {
	if key.Collate {
		// Collators carry internal buffers, so build one per sort rather
		// than sharing a package-level instance across goroutines.
		col := collate.New(language.TraditionalChinese)
		sort.SliceStable(groups, func(i, j int) bool {
			if c := col.CompareString(groups[i].Label, groups[j].Label); c != 0 {
				return c < 0
			}
			return groups[i].Key < groups[j].Key
		})
		return
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
}
