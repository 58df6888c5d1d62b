package board

import (
	"strconv"
	"time"

	"github.com/iyouport-org/noticeboard/pkg/view"
	"github.com/iyouport-org/noticeboard/pkg/webapi"
)

// Routes the rendered page posts back to.
const (
	PathHome        = "/"
	PathSearch      = "/search"
	PathClearSearch = "/search/clear"
	PathRefresh     = "/refresh"
	PathSubmit      = "/submit"
	PathCancel      = "/cancel"
	PathEdit        = "/edit/"
	PathDelete      = "/delete/"
	PathStatic      = "/static"
	PathStylesheet  = PathStatic + "/style.css"
)

const (
	EmptyTitle         = "No notices yet"
	EmptyHint          = "Add your first notice using the form"
	EmptySearchTitle   = "No notices found"
	EmptySearchHint    = "Try a different search term"
	FormTitleCreate    = "Add New Notice"
	FormTitleEdit      = "Edit Notice"
	SubmitLabelCreate  = "Add Notice"
	SubmitLabelEdit    = "Update Notice"
	ConfirmDeleteLabel = "Delete"
	DeclineDeleteLabel = "Keep"
)

func EditPath(id uint) string {
	return PathEdit + strconv.FormatUint(uint64(id), 10)
}

func DeletePath(id uint) string {
	return PathDelete + strconv.FormatUint(uint64(id), 10)
}

// TokenField is the form field carrying the session's form token.
const TokenField = "token"

type PageOptions struct {
	Now time.Time
	// Token, when set, is added to every form that posts back.
	Token string
	// ConfirmDelete opens the delete confirmation for that notice id.
	ConfirmDelete *uint
}

// Page renders the whole board.
func Page(s State, opts PageOptions) *view.Element {
	body := view.E("body", nil,
		view.E("div", view.A("class", "container"),
			Header(s),
			view.E("main", view.A("class", "layout"),
				NoticeForm(s),
				view.E("section", view.A("class", "list-card"),
					SearchBar(s),
					Grid(s),
				),
			),
		),
		ToastView(s.Toast, opts.Now),
	)
	if opts.ConfirmDelete != nil {
		body.Children = append(body.Children, ConfirmDialog(*opts.ConfirmDelete))
	}
	if opts.Token != "" {
		for _, form := range body.Find(postForm) {
			form.Children = append(form.Children,
				view.E("input", view.A("type", "hidden", "name", TokenField, "value", opts.Token)),
			)
		}
	}
	return view.E("html", view.A("lang", "en"),
		view.E("head", nil,
			view.E("meta", view.A("charset", "utf-8")),
			view.E("meta", view.A("name", "viewport", "content", "width=device-width, initial-scale=1")),
			view.E("title", nil, view.Text("Notice Board")),
			view.E("link", view.A("rel", "stylesheet", "href", PathStylesheet)),
		),
		body,
	)
}

func postForm(el *view.Element) bool {
	method, _ := el.Attr("method")
	return el.Tag == "form" && method == "post"
}

func Header(s State) *view.Element {
	refreshClass := "btn-refresh"
	if s.Refreshing {
		refreshClass += " loading"
	}
	return view.E("header", view.A("class", "header"),
		view.E("h1", nil, view.Text("Notice Board")),
		view.E("div", view.A("class", "stats"),
			view.E("span", view.A("id", "totalNotices", "class", "stat-value"), view.Text(strconv.Itoa(s.Count()))),
			view.E("span", view.A("class", "stat-label"), view.Text("Total Notices")),
		),
		view.E("form", view.A("method", "post", "action", PathRefresh),
			view.E("button", view.A("id", "refreshBtn", "type", "submit", "class", refreshClass),
				iconRefresh(), view.Text("Refresh"),
			),
		),
	)
}

func SearchBar(s State) *view.Element {
	form := view.E("form", view.A("id", "searchForm", "class", "search-box", "method", "get", "action", PathSearch),
		view.E("input", view.A("id", "searchInput", "type", "search", "name", "q", "value", s.Search, "placeholder", "Search by ID or title...")),
	)
	if s.Filtering() {
		form.Children = append(form.Children,
			view.E("a", view.A("id", "clearSearch", "class", "btn-clear", "href", PathClearSearch), view.Text("✕")),
		)
	}
	return form
}

// NoticeForm renders the create/edit form in the presentation of the
// current mode.
func NoticeForm(s State) *view.Element {
	heading, label, icon := FormTitleCreate, SubmitLabelCreate, iconPlus()
	if s.Mode == ModeEdit {
		heading, label, icon = FormTitleEdit, SubmitLabelEdit, iconUpdate()
	}
	actions := view.E("div", view.A("class", "form-actions"),
		view.E("button", view.A("id", "submitBtn", "type", "submit", "class", "btn btn-primary", "data-mode", s.Mode.String()),
			icon, view.Text(label),
		),
	)
	if s.Mode == ModeEdit {
		actions.Children = append(actions.Children,
			view.E("button", view.A("id", "cancelBtn", "type", "submit", "class", "btn btn-secondary", "formaction", PathCancel, "formnovalidate", "formnovalidate"),
				view.Text("Cancel"),
			),
		)
	}
	return view.E("section", view.A("class", "form-card"),
		view.E("h2", view.A("id", "formTitle"), view.Text(heading)),
		view.E("form", view.A("id", "noticeForm", "method", "post", "action", PathSubmit),
			view.E("label", view.A("for", "noticeTitle"), view.Text("Title")),
			view.E("input", view.A("id", "noticeTitle", "name", "title", "type", "text", "required", "required", "value", s.Form.Title)),
			view.E("label", view.A("for", "noticeDescription"), view.Text("Description")),
			view.E("textarea", view.A("id", "noticeDescription", "name", "description", "rows", "5", "required", "required"),
				view.Text(s.Form.Description),
			),
			actions,
		),
	)
}

// Grid renders one card per visible notice, or the empty state.
func Grid(s State) *view.Element {
	if len(s.Notices) == 0 {
		return EmptyState(s.Total > 0 && s.Filtering())
	}
	grid := view.E("div", view.A("id", "noticesGrid", "class", "notices-grid"))
	for _, n := range s.Notices {
		grid.Children = append(grid.Children, Card(n))
	}
	return grid
}

func Card(n webapi.Notice) *view.Element {
	id := strconv.FormatUint(uint64(n.ID), 10)
	return view.E("div", view.A("class", "notice-card", "data-id", id),
		view.E("div", view.A("class", "notice-header"),
			view.E("div", view.A("class", "notice-id"), view.Text("ID: "+id)),
		),
		view.E("h3", view.A("class", "notice-title"), view.Text(n.Title)),
		view.E("div", view.A("class", "notice-description"), view.Text(n.Description)),
		view.E("div", view.A("class", "notice-actions"),
			view.E("form", view.A("method", "post", "action", EditPath(n.ID)),
				view.E("button", view.A("type", "submit", "class", "btn-icon btn-edit"), iconEdit(), view.Text("Edit")),
			),
			view.E("a", view.A("class", "btn-icon btn-delete", "href", DeletePath(n.ID)), iconDelete(), view.Text("Delete")),
		),
	)
}

// EmptyState distinguishes an empty board from a search without matches.
func EmptyState(noMatches bool) *view.Element {
	title, hint, class := EmptyTitle, EmptyHint, "empty-state show"
	if noMatches {
		title, hint, class = EmptySearchTitle, EmptySearchHint, "empty-state show empty-search"
	}
	return view.E("div", view.A("id", "emptyState", "class", class),
		iconEmpty(),
		view.E("h3", nil, view.Text(title)),
		view.E("p", nil, view.Text(hint)),
	)
}

// ToastView renders t while it is visible at now, and an idle container
// otherwise.
func ToastView(t *Toast, now time.Time) *view.Element {
	if t == nil || !t.Visible(now) {
		return view.E("div", view.A("id", "toast", "class", "toast"))
	}
	remaining := t.ShownAt.Add(ToastDuration).Sub(now)
	return view.E("div", view.A("id", "toast", "class", "toast show "+string(t.Kind), "role", "status",
		"style", "animation-duration: "+strconv.FormatInt(remaining.Milliseconds(), 10)+"ms"),
		view.E("span", view.A("id", "toastIcon", "class", "toast-icon"), view.Text(t.Icon())),
		view.E("span", view.A("id", "toastMessage"), view.Text(t.Message)),
	)
}

func ConfirmDialog(id uint) *view.Element {
	return view.E("div", view.A("id", "confirmDelete", "class", "modal show", "role", "dialog"),
		view.E("form", view.A("class", "modal-card", "method", "post", "action", DeletePath(id)),
			view.E("p", nil, view.Text(DeleteConfirmText)),
			view.E("div", view.A("class", "form-actions"),
				view.E("button", view.A("type", "submit", "name", "confirm", "value", "yes", "class", "btn btn-danger"), view.Text(ConfirmDeleteLabel)),
				view.E("button", view.A("type", "submit", "name", "confirm", "value", "no", "class", "btn btn-secondary"), view.Text(DeclineDeleteLabel)),
			),
		),
	)
}
