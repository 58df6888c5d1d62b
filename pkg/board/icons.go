package board

import "github.com/iyouport-org/noticeboard/pkg/view"

func svg(size string, children ...view.Node) *view.Element {
	return view.E("svg", view.A("width", size, "height", size, "viewBox", "0 0 "+size+" "+size, "fill", "none", "aria-hidden", "true"), children...)
}

func strokePath(d string) *view.Element {
	return view.E("path", view.A("d", d, "stroke", "currentColor", "stroke-width", "2", "stroke-linecap", "round", "stroke-linejoin", "round"))
}

func iconPlus() *view.Element {
	return svg("20", strokePath("M10 5V15M5 10H15"))
}

func iconUpdate() *view.Element {
	return svg("20", strokePath("M14.166 2.5C14.3849 2.28113 14.6447 2.10752 14.9307 1.98906C15.2167 1.87061 15.5232 1.80969 15.8327 1.80969C16.1422 1.80969 16.4487 1.87061 16.7347 1.98906C17.0206 2.10752 17.2805 2.28113 17.4993 2.5C17.7182 2.71887 17.8918 2.97871 18.0103 3.26468C18.1287 3.55064 18.1897 3.85714 18.1897 4.16667C18.1897 4.47619 18.1287 4.78269 18.0103 5.06866C17.8918 5.35462 17.7182 5.61446 17.4993 5.83333L6.24935 17.0833L1.66602 18.3333L2.91602 13.75L14.166 2.5Z"))
}

func iconEdit() *view.Element {
	return svg("16", strokePath("M11.333 2L13.333 4L5.333 13.333L1.333 14.667L2.667 10.667L11.333 2Z"))
}

func iconDelete() *view.Element {
	return svg("16",
		strokePath("M2 4H3.33333H14"),
		strokePath("M5.333 4V2.667C5.333 1.93 5.93 1.333 6.667 1.333H9.333C10.07 1.333 10.667 1.93 10.667 2.667V4M12.667 4V13.333C12.667 14.07 12.07 14.667 11.333 14.667H4.667C3.93 14.667 3.333 14.07 3.333 13.333V4H12.667Z"),
	)
}

func iconRefresh() *view.Element {
	return svg("20", strokePath("M16.667 10A6.667 6.667 0 1 1 14.714 5.286M16.667 3.333V6.667H13.333"))
}

func iconEmpty() *view.Element {
	return svg("80",
		view.E("circle", view.A("cx", "40", "cy", "40", "r", "30", "fill", "#f3f4f6")),
		view.E("path", view.A("d", "M30 40L50 40M40 30L40 50", "stroke", "#9ca3af", "stroke-width", "3", "stroke-linecap", "round")),
	)
}
