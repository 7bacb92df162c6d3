package pagecomp

// DisplayGroup is a presentation grouping of one or more categories.
type DisplayGroup string

// DisplayGroup constants.
const (
	GroupHeaderFooter DisplayGroup = "Header/Footer"
	GroupNavBar       DisplayGroup = "Navigation Bar"
	GroupTextBlock    DisplayGroup = "Text Block"
	GroupImageGallery DisplayGroup = "Image Gallery"
	GroupLinkBlock    DisplayGroup = "Link Block"
	GroupButtonBlock  DisplayGroup = "Button Block"
	GroupForm         DisplayGroup = "Form"
	GroupModal        DisplayGroup = "Modal"
)

// DisplayGroups lists every group in table column order.
var DisplayGroups = []DisplayGroup{
	GroupHeaderFooter,
	GroupNavBar,
	GroupTextBlock,
	GroupImageGallery,
	GroupLinkBlock,
	GroupButtonBlock,
	GroupForm,
	GroupModal,
}

var categoryGroups = map[Category]DisplayGroup{
	CategoryHeader:       GroupHeaderFooter,
	CategoryFooter:       GroupHeaderFooter,
	CategoryTextBlock:    GroupTextBlock,
	CategoryImageGallery: GroupImageGallery,
	CategoryNavBar:       GroupNavBar,
	CategoryLinkBlock:    GroupLinkBlock,
	CategoryButtonBlock:  GroupButtonBlock,
	CategoryForms:        GroupForm,
	CategoryModals:       GroupModal,
}

// GroupOf returns the display group a category folds into.
func GroupOf(cat Category) DisplayGroup {
	return categoryGroups[cat]
}

// GroupView is the aggregated content of one display group.
type GroupView struct {
	Group   DisplayGroup `json:"-"`
	Count   int          `json:"count"`
	Details []Record     `json:"details"`
}

// PageView is the aggregated view of one file.
type PageView struct {
	Name   string
	Groups []*GroupView
}

// Group returns the view of a display group, or nil when the file has no
// records in it.
func (v *PageView) Group(g DisplayGroup) *GroupView {
	for _, gv := range v.Groups {
		if gv.Group == g {
			return gv
		}
	}
	return nil
}

// Count returns the record count of a display group, 0 when absent.
func (v *PageView) Count(g DisplayGroup) int {
	if gv := v.Group(g); gv != nil {
		return gv.Count
	}
	return 0
}

// MarshalJSON encodes the page as an object keyed by display group.
func (v *PageView) MarshalJSON() ([]byte, error) {
	fields := make([]jsonField, len(v.Groups))
	for i, gv := range v.Groups {
		fields[i] = jsonField{Key: string(gv.Group), Value: gv}
	}
	return marshalObject(fields)
}

// View is the aggregated, display-grouped form of a PageSummary.
type View []*PageView

// MarshalJSON encodes the view as an object keyed by file name.
func (v View) MarshalJSON() ([]byte, error) {
	fields := make([]jsonField, len(v))
	for i, p := range v {
		fields[i] = jsonField{Key: p.Name, Value: p}
	}
	return marshalObject(fields)
}

// Aggregate folds each file's categories into display groups. A group's
// count is the number of records of all its categories and its details are
// their concatenation in category order. Groups without records are omitted.
func Aggregate(summary PageSummary) View {
	view := make(View, 0, len(summary))
	for _, page := range summary {
		groups := make(map[DisplayGroup]*GroupView)
		if page.Components != nil {
			for _, cat := range Categories {
				records := page.Components.Records(cat)
				if len(records) == 0 {
					continue
				}
				g := GroupOf(cat)
				gv, ok := groups[g]
				if !ok {
					gv = &GroupView{Group: g}
					groups[g] = gv
				}
				gv.Count += len(records)
				gv.Details = append(gv.Details, records...)
			}
		}

		pv := &PageView{Name: page.Name}
		for _, g := range DisplayGroups {
			if gv, ok := groups[g]; ok {
				pv.Groups = append(pv.Groups, gv)
			}
		}
		view = append(view, pv)
	}
	return view
}
