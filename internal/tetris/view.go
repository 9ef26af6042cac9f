package tetris

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

const (
	boardXOffset = 4
	boardYOffset = 2
)

var pieceColors = map[int]tcell.Color{
	ColorI: tcell.ColorDarkCyan,
	ColorJ: tcell.ColorBlue,
	ColorL: tcell.ColorOrange,
	ColorO: tcell.ColorYellow,
	ColorS: tcell.ColorGreen,
	ColorT: tcell.ColorPurple,
	ColorZ: tcell.ColorRed,
}

// View draws sessions on a terminal screen
type View struct {
	screen tcell.Screen
	title  string
}

// NewView creates a view drawing on screen, the screen must be initialized
func NewView(screen tcell.Screen, title string) *View {
	screen.Clear()
	return &View{screen: screen, title: title}
}

// Draw redraws the whole session and shows it
func (view *View) Draw(session *Session) {
	view.screen.Fill(' ', tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlack))
	view.drawBoardBoarder(session)
	view.drawPreviewBoarder(session)
	view.drawTexts(session)
	view.drawBoard(session)
	view.drawPreview(session)

	if ghost := session.Ghost(); ghost != nil {
		ghost.Cells(func(x, y, _ int) {
			view.DrawBlock(x, y, tcell.ColorSilver, '░')
		})
		session.Current().Cells(func(x, y, value int) {
			view.DrawBlock(x, y, pieceColors[value], '█')
		})
	}

	view.drawResult(session)
	view.screen.Show()
}

// ShowResult draws the stage clear or game over banner over what is on
// screen, leaving the rest of the frame as it is
func (view *View) ShowResult(session *Session) {
	view.drawResult(session)
	view.screen.Show()
}

func (view *View) drawResult(session *Session) {
	switch session.State() {
	case StateStageCleared:
		view.drawBanner(session, "STAGE CLEAR", fmt.Sprintf("score %d", session.Score()), "any key to go on")
	case StateGameOver:
		view.drawBanner(session, " GAME OVER", fmt.Sprintf("score %d", session.Score()), "any key to go on")
	}
}

// drawBoardBoarder draws the board boarder
func (view *View) drawBoardBoarder(session *Session) {
	xOffset := boardXOffset
	yOffset := boardYOffset
	xEnd := boardXOffset + session.Cols()*2 + 4
	yEnd := boardYOffset + session.Rows() + 2
	styleBoarder := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	styleBoard := tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)
	for x := xOffset; x < xEnd; x++ {
		for y := yOffset; y < yEnd; y++ {
			if x == xOffset || x == xOffset+1 || x == xEnd-1 || x == xEnd-2 || y == yOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBoarder)
			} else {
				view.screen.SetContent(x, y, ' ', nil, styleBoard)
			}
		}
	}
}

// drawPreviewBoarder draws the boarder of the next piece box
func (view *View) drawPreviewBoarder(session *Session) {
	xOffset := boardXOffset + session.Cols()*2 + 8
	yOffset := boardYOffset
	xEnd := xOffset + 14
	yEnd := yOffset + 6
	styleBoarder := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	styleBoard := tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)
	for x := xOffset; x < xEnd; x++ {
		for y := yOffset; y < yEnd; y++ {
			if x == xOffset || x == xOffset+1 || x == xEnd-1 || x == xEnd-2 || y == yOffset || y == yEnd-1 {
				view.screen.SetContent(x, y, ' ', nil, styleBoarder)
			} else {
				view.screen.SetContent(x, y, ' ', nil, styleBoard)
			}
		}
	}
}

func (view *View) drawTexts(session *Session) {
	xOffset := boardXOffset + session.Cols()*2 + 8
	yOffset := boardYOffset + 7

	title := strings.ToUpper(session.Stage().ID)
	if view.title != "" {
		title += "  " + view.title
	}
	view.drawText(xOffset, boardYOffset-1, title, tcell.ColorWhite, tcell.ColorBlack)

	view.drawText(xOffset, yOffset, "SCORE:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+7, yOffset, fmt.Sprintf("%7d", session.Score()), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	view.drawText(xOffset, yOffset, "LINES:", tcell.ColorLightGray, tcell.ColorDarkBlue)
	view.drawText(xOffset+7, yOffset, fmt.Sprintf("%3d/%-3d", session.LinesCleared(), session.Goal().Count), tcell.ColorBlack, tcell.ColorLightGray)

	yOffset += 2

	// ascii arrow characters add extra two spaces
	view.drawText(xOffset, yOffset, "←  - left", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "→  - right", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "↓  - soft drop", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "↑  - rotate", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "sbar - hard drop", tcell.ColorLightGray, tcell.ColorBlack)
	yOffset++
	view.drawText(xOffset, yOffset, "q    - quit", tcell.ColorLightGray, tcell.ColorBlack)
}

func (view *View) drawBoard(session *Session) {
	for y, row := range session.Board() {
		for x, value := range row {
			if value != 0 {
				view.DrawBlock(x, y, pieceColors[value], '█')
			}
		}
	}
}

// drawPreview draws the next piece centered in the preview box
func (view *View) drawPreview(session *Session) {
	next := session.Next()
	if next == nil {
		return
	}
	length := next.Size()
	next.X = 0
	next.Y = 0
	next.Cells(func(x, y, value int) {
		xOffset := 2*x + 2*session.Cols() + boardXOffset + 11 + (4 - length)
		style := tcell.StyleDefault.Foreground(pieceColors[value]).Background(tcell.ColorBlack)
		view.screen.SetContent(xOffset, y+boardYOffset+1, '█', nil, style)
		view.screen.SetContent(xOffset+1, y+boardYOffset+1, '█', nil, style)
	})
}

// DrawBlock draws one board cell, cells above the board are skipped
func (view *View) DrawBlock(x int, y int, color tcell.Color, char rune) {
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(color).Background(tcell.ColorBlack)
	view.screen.SetContent(2*x+boardXOffset+2, y+boardYOffset+1, char, nil, style)
	view.screen.SetContent(2*x+boardXOffset+3, y+boardYOffset+1, char, nil, style)
}

func (view *View) drawBanner(session *Session, lines ...string) {
	yOffset := boardYOffset + session.Rows()/2 - 1
	for _, line := range lines {
		view.drawTextCenter(session, yOffset, line, tcell.ColorWhite, tcell.ColorBlack)
		yOffset += 2
	}
}

// drawText draws the provided text
func (view *View) drawText(x int, y int, text string, fg tcell.Color, bg tcell.Color) {
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	for index, char := range []rune(text) {
		view.screen.SetContent(x+index, y, char, nil, style)
	}
}

// drawTextCenter draws text in the center of the board
func (view *View) drawTextCenter(session *Session, y int, text string, fg tcell.Color, bg tcell.Color) {
	xOffset := session.Cols() - (len(text)+1)/2 + boardXOffset + 2
	view.drawText(xOffset, y, text, fg, bg)
}

// ShowGameOverAnimation greys out the board from the bottom up
func (view *View) ShowGameOverAnimation(session *Session) {
	logger.Println("View ShowGameOverAnimation start")

	for y := session.Rows() - 1; y >= 0; y-- {
		view.colorizeLine(session, y, tcell.ColorLightGray)
		view.screen.Show()
		time.Sleep(60 * time.Millisecond)
	}

	logger.Println("View ShowGameOverAnimation end")
}

// colorizeLine changes the color of a line
func (view *View) colorizeLine(session *Session, y int, color tcell.Color) {
	style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(color)
	for x := 0; x < session.Cols(); x++ {
		view.screen.SetContent(x*2+boardXOffset+2, y+boardYOffset+1, ' ', nil, style)
		view.screen.SetContent(x*2+boardXOffset+3, y+boardYOffset+1, ' ', nil, style)
	}
}
