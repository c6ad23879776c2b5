package tui

import "github.com/MKhiriev/go-house-builder/models"

type noticeOverlayModel struct {
	notice models.Notice
}

func (m noticeOverlayModel) View() string {
	var title string
	switch m.notice.Level {
	case models.NoticeError:
		title = errorStyle.Render("Error")
	case models.NoticeSuccess:
		title = successStyle.Render("Success")
	default:
		title = titleStyle.Render("Notice")
	}

	content := title + "\n\n" + m.notice.Message + "\n\n" + helpStyle.Render("enter / esc: close")
	return overlayBoxStyle.Render(content)
}
