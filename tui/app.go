package tui

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"cinepass-cli/model"
	"cinepass-cli/purchase"
	"cinepass-cli/service"
	"cinepass-cli/store"
	"cinepass-cli/subscription"
)

type appState int

const (
	stateLoadingSession appState = iota
	stateLogin
	stateAuthenticating
	stateLoadingMovies
	stateSelectMovie
	stateLoadingCinemas
	stateSelectCinema
	stateSelectDate
	stateLoadingShowtimes
	stateSelectShowtime
	stateLoadingSeats
	stateSelectSeats
	stateConfirm
	statePurchasing
	stateAwaitPayment
	stateSuccess
	stateLoadingPlans
	statePlans
	stateError
)

type appModel struct {
	client *service.Client

	state     appState
	lastState appState
	err       error

	width  int
	height int

	session *store.Session
	sub     *model.UserSubscription

	movies        []model.Movie
	pagination    model.Pagination
	favorites     map[int]bool
	favoritesOnly bool

	flow        *purchase.Flow
	cursor      seatCursor
	checkoutURL string
	checkoutID  string

	movieList    list.Model
	cinemaList   list.Model
	dateList     list.Model
	showtimeList list.Model
	planList     list.Model

	login           loginForm
	showSeatNumbers bool
	planNotice      string

	spinner spinner.Model
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
}

type sessionMsg struct {
	session *store.Session
	err     error
}

type authMsg struct {
	session store.Session
	err     error
}

type subscriptionMsg struct {
	sub    *model.UserSubscription
	notice string
	err    error
}

type moviesMsg struct {
	movies     []model.Movie
	pagination model.Pagination
	title      string
	err        error
}

type favoriteMsg struct {
	movieID int
	now     bool
	err     error
}

type cinemasMsg struct {
	cinemas []model.Cinema
	err     error
}

type showtimesMsg struct {
	date    string
	results []model.ShowtimeSearchResult
	err     error
}

type seatDataMsg struct {
	seq  int
	data purchase.ShowtimeData
	err  error
}

type purchaseMsg struct {
	result model.TicketPurchaseResponse
	err    error
}

type checkoutMsg struct {
	session model.CheckoutSession
	err     error
}

type orderMsg struct {
	order *model.TicketPurchaseResponse
	err   error
}

type checkoutOpenedMsg struct {
	url string
	id  string
}

// New wires the TUI around a configured API client. The client's token
// source follows whatever session the model holds.
func New(client *service.Client) tea.Model {
	m := appModel{
		client:    client,
		state:     stateLoadingSession,
		favorites: map[int]bool{},
	}

	m.movieList = newList("Movies")
	m.cinemaList = newList("Select Cinema")
	m.dateList = newList("Select Date")
	m.showtimeList = newList("Select Showtime")
	m.planList = newList("Plans")
	m.dateList.SetFilteringEnabled(false)
	m.planList.SetFilteringEnabled(false)
	m.login = newLoginForm()
	m.showSeatNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(loadSessionCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateLogin {
			return m.handleLoginKey(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		if service.IsUnauthorized(msg.err) {
			return m.forceLogin("Your session expired. Sign in again."), nil
		}
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.state = stateError
		return m, nil

	case sessionMsg:
		if msg.err != nil || msg.session == nil {
			m.state = stateLogin
			return m, nil
		}
		return m.startAuthenticatedSession(*msg.session)

	case authMsg:
		if msg.err != nil {
			m.state = stateLogin
			m.err = loginError(msg.err)
			return m, nil
		}
		m.err = nil
		_ = store.SaveSession(msg.session)
		return m.startAuthenticatedSession(msg.session)

	case subscriptionMsg:
		if msg.err != nil {
			// plan data is a nicety on most screens; only the plans view
			// surfaces the failure
			if m.state == stateLoadingPlans {
				return m, errCmd(msg.err)
			}
			return m, nil
		}
		m.sub = msg.sub
		m.planNotice = msg.notice
		m.planList.SetItems(buildPlanItems(m.sub))
		if m.state == stateLoadingPlans {
			m.state = statePlans
		}
		return m, nil

	case moviesMsg:
		if msg.err != nil {
			return m, errWithReturnCmd(msg.err, stateSelectMovie)
		}
		m.movies = msg.movies
		m.pagination = msg.pagination
		m.movieList.Title = msg.title
		m.refreshMovieList()
		m.state = stateSelectMovie
		return m, nil

	case favoriteMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		if m.favorites == nil {
			m.favorites = map[int]bool{}
		}
		if msg.now {
			m.favorites[msg.movieID] = true
		} else {
			delete(m.favorites, msg.movieID)
		}
		m.refreshMovieList()
		return m, nil

	case cinemasMsg:
		if msg.err != nil {
			return m, errWithReturnCmd(msg.err, stateSelectMovie)
		}
		m.cinemaList.SetItems(buildCinemaItems(msg.cinemas))
		m.cinemaList.Select(0)
		m.state = stateSelectCinema
		return m, nil

	case showtimesMsg:
		if msg.err != nil {
			return m, errWithReturnCmd(msg.err, stateSelectDate)
		}
		m.flow.ApplySearch(msg.date, msg.results)
		items := buildShowtimeItems(msg.results)
		if len(items) == 0 {
			return m, errWithReturnCmd(
				fmt.Errorf("no showtimes on %s, try another date", msg.date),
				stateSelectDate,
			)
		}
		m.showtimeList.SetItems(items)
		m.showtimeList.Select(0)
		m.state = stateSelectShowtime
		return m, nil

	case seatDataMsg:
		if msg.err != nil {
			m.flow.FailShowtimeData(msg.seq, msg.err)
			return m, errWithReturnCmd(msg.err, stateSelectShowtime)
		}
		if !m.flow.ApplyShowtimeData(msg.seq, msg.data.Details, msg.data.Room) {
			return m, nil
		}
		m.cursor = firstSeatCursor(m.flow.Layout())
		m.state = stateSelectSeats
		return m, nil

	case purchaseMsg:
		if msg.err != nil {
			m.flow.Fail(msg.err)
			m.err = msg.err
			m.state = stateConfirm
			return m, nil
		}
		m.flow.ApplyPurchase(msg.result)
		m.err = nil
		m.state = stateSuccess
		return m, m.fetchSubscriptionCmd("")

	case checkoutMsg:
		if msg.err != nil {
			m.flow.Fail(msg.err)
			m.err = msg.err
			m.state = stateConfirm
			return m, nil
		}
		if m.flow.Cinema != nil {
			_ = store.SaveCheckoutStash(m.flow.MovieID, m.flow.Date)
		}
		return m, openCheckoutCmd(msg.session)

	case checkoutOpenedMsg:
		m.checkoutURL = msg.url
		m.checkoutID = msg.id
		m.err = nil
		m.state = stateAwaitPayment
		return m, nil

	case orderMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateAwaitPayment
			return m, nil
		}
		if msg.order == nil {
			m.err = errors.New("order not confirmed yet, give it a moment and try again")
			m.state = stateAwaitPayment
			return m, nil
		}
		_, _ = store.TakeCheckoutStash()
		m.flow.ApplyPurchase(*msg.order)
		m.err = nil
		m.state = stateSuccess
		return m, m.fetchSubscriptionCmd("")
	}

	if m.state == stateLogin {
		var cmd tea.Cmd
		m.login, cmd = m.login.update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectCinema:
		m.cinemaList, cmd = m.cinemaList.Update(msg)
	case stateSelectDate:
		m.dateList, cmd = m.dateList.Update(msg)
	case stateSelectShowtime:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	case statePlans:
		m.planList, cmd = m.planList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateLoadingSession, stateAuthenticating, stateLoadingMovies, stateLoadingCinemas,
		stateLoadingShowtimes, stateLoadingSeats, statePurchasing, stateLoadingPlans:
		return header + "\n\n" + m.loadingView()
	case stateLogin:
		return header + "\n\n" + m.login.view(m.err)
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectCinema:
		return header + "\n\n" + m.cinemaList.View()
	case stateSelectDate:
		return header + "\n\n" + m.dateList.View()
	case stateSelectShowtime:
		return header + "\n\n" + m.showtimeList.View()
	case stateSelectSeats:
		return header + "\n\n" + m.renderSeatGrid()
	case stateConfirm:
		return header + "\n\n" + m.renderConfirm()
	case stateAwaitPayment:
		return header + "\n\n" + m.renderAwaitPayment()
	case stateSuccess:
		return header + "\n\n" + m.renderSuccess()
	case statePlans:
		return header + "\n\n" + m.plansView()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("CinePass")
	sub := []string{}
	if m.session != nil && m.session.User.Email != "" {
		sub = append(sub, m.session.User.Email)
	}
	if name := subscription.PlanName(m.sub); name != "" {
		sub = append(sub, fmt.Sprintf("Plan: %s", name))
	}
	if m.flow != nil {
		if m.flow.Cinema != nil {
			sub = append(sub, fmt.Sprintf("Cinema: %s", m.flow.Cinema.Name))
		}
		if m.flow.Date != "" {
			sub = append(sub, fmt.Sprintf("Date: %s", m.flow.Date))
		}
		if m.flow.Showtime != nil && m.state != stateSelectShowtime {
			sub = append(sub, fmt.Sprintf("Showtime: %s", m.flow.Showtime.StartTime))
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back"
	switch m.state {
	case stateSelectMovie:
		hints = "ctrl+c quit • type to filter • enter buy tickets • ctrl+t favorite • ctrl+f favorites • ctrl+s search • ctrl+o popular • ctrl+p plans • ctrl+l sign out"
	case stateSelectCinema, stateSelectShowtime:
		hints = "ctrl+c quit • esc back • type to filter • enter select"
	case stateSelectDate:
		hints = "ctrl+c quit • esc back • enter select date"
	case stateSelectSeats:
		hints = "ctrl+c quit • esc back • arrows move • space/enter toggle seat • c continue • n numbers"
	case statePlans:
		hints = "ctrl+c quit • esc back • enter subscribe • x cancel plan • r reactivate plan"
	}

	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) plansView() string {
	var b strings.Builder
	if m.sub.Active() {
		line := fmt.Sprintf("Current plan: %s • %d free tickets left • %.0f%% off tickets",
			subscription.PlanName(m.sub), m.sub.FreeTicketsRemaining, m.sub.DiscountPercent)
		if m.sub.CancelAtPeriodEnd {
			line += fmt.Sprintf(" • cancels %s", m.sub.CurrentPeriodEnd)
		}
		b.WriteString(hint(line) + "\n")
	} else {
		b.WriteString(hint("No active plan. Subscribe for discounts and free tickets.") + "\n")
	}
	if m.planNotice != "" {
		b.WriteString(hint(m.planNotice) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.planList.View())
	return b.String()
}

func (m appModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.login = m.login.cycleFocus()
		return m, nil
	case "enter":
		creds := m.login.credentials()
		m.err = nil
		m.state = stateAuthenticating
		return m, tea.Batch(m.loginCmd(creds), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		next, cmd := m.goBack()
		return next, cmd, true
	case "n":
		if m.state == stateSelectSeats {
			m.showSeatNumbers = !m.showSeatNumbers
			return m, nil, true
		}
	case "ctrl+t":
		if m.state == stateSelectMovie {
			item, ok := m.movieList.SelectedItem().(movieListItem)
			if !ok {
				return m, nil, true
			}
			return m, toggleFavoriteCmd(item.movie.Id), true
		}
	case "ctrl+f":
		if m.state == stateSelectMovie {
			m.favoritesOnly = !m.favoritesOnly
			m.refreshMovieList()
			return m, nil, true
		}
	case "ctrl+s":
		if m.state == stateSelectMovie {
			query := strings.TrimSpace(m.movieList.FilterValue())
			if query == "" {
				return m, nil, true
			}
			m.movieList.ResetFilter()
			m.state = stateLoadingMovies
			return m, tea.Batch(m.searchMoviesCmd(query), m.spinner.Tick), true
		}
	case "ctrl+o":
		if m.state == stateSelectMovie {
			m.state = stateLoadingMovies
			return m, tea.Batch(m.fetchPopularMoviesCmd(), m.spinner.Tick), true
		}
	case "ctrl+p":
		if m.state == stateSelectMovie {
			m.state = stateLoadingPlans
			return m, tea.Batch(m.fetchSubscriptionCmd(""), m.spinner.Tick), true
		}
	case "ctrl+l":
		if m.state == stateSelectMovie {
			return m.forceLogin("Signed out."), nil, true
		}
	case "x":
		if m.state == statePlans {
			if !m.sub.Active() || m.sub.CancelAtPeriodEnd {
				return m, nil, true
			}
			m.state = stateLoadingPlans
			return m, tea.Batch(m.cancelSubscriptionCmd(), m.spinner.Tick), true
		}
	case "r":
		if m.state == statePlans {
			if m.sub == nil || !m.sub.CancelAtPeriodEnd {
				return m, nil, true
			}
			m.state = stateLoadingPlans
			return m, tea.Batch(m.reactivateSubscriptionCmd(), m.spinner.Tick), true
		}
	case "c":
		if m.state == stateSelectSeats {
			if m.flow.ContinueToConfirm() {
				m.err = nil
				m.state = stateConfirm
			}
			return m, nil, true
		}
	case "up", "k":
		if m.state == stateSelectSeats {
			m.cursor = m.cursor.moveVertical(m.flow.Layout(), -1)
			return m, nil, true
		}
	case "down", "j":
		if m.state == stateSelectSeats {
			m.cursor = m.cursor.moveVertical(m.flow.Layout(), 1)
			return m, nil, true
		}
	case "left", "h":
		if m.state == stateSelectSeats {
			m.cursor = m.cursor.moveHorizontal(m.flow.Layout(), -1)
			return m, nil, true
		}
	case "right", "l":
		if m.state == stateSelectSeats {
			m.cursor = m.cursor.moveHorizontal(m.flow.Layout(), 1)
			return m, nil, true
		}
	case " ":
		if m.state == stateSelectSeats {
			if id, ok := m.cursor.seatID(m.flow.Layout()); ok {
				m.flow.ToggleSeat(id)
			}
			return m, nil, true
		}
	case "o":
		if m.state == stateAwaitPayment && m.checkoutURL != "" {
			return m, openURLCmd(m.checkoutURL), true
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieListItem)
			if !ok {
				return m, nil, true
			}
			m.flow = purchase.NewFlow(item.movie.Id)
			m.state = stateLoadingCinemas
			return m, tea.Batch(m.fetchCinemasCmd(), m.spinner.Tick), true
		case stateSelectCinema:
			item, ok := m.cinemaList.SelectedItem().(cinemaItem)
			if !ok {
				return m, nil, true
			}
			m.flow.SelectCinema(item.cinema)
			_ = store.RememberCinema(store.RecentCinema{
				Id:   item.cinema.Id,
				Name: item.cinema.Name,
				City: item.cinema.City,
			})
			m.dateList.SetItems(buildDateItems(time.Now()))
			m.dateList.Select(0)
			m.state = stateSelectDate
			return m, nil, true
		case stateSelectDate:
			item, ok := m.dateList.SelectedItem().(dateItem)
			if !ok {
				return m, nil, true
			}
			date := item.date.Format(time.DateOnly)
			m.state = stateLoadingShowtimes
			return m, tea.Batch(m.fetchShowtimesCmd(date), m.spinner.Tick), true
		case stateSelectShowtime:
			item, ok := m.showtimeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			seq := m.flow.StageShowtime(item.showtime, item.roomName)
			m.state = stateLoadingSeats
			return m, tea.Batch(m.fetchSeatDataCmd(seq, item.showtime.Id, item.showtime.RoomId), m.spinner.Tick), true
		case stateSelectSeats:
			if id, ok := m.cursor.seatID(m.flow.Layout()); ok {
				m.flow.ToggleSeat(id)
			}
			return m, nil, true
		case stateConfirm:
			if !m.flow.CanConfirm() {
				return m, nil, true
			}
			breakdown := subscription.CalculatePrice(m.sub, m.flow.Showtime.TicketPrice, m.flow.Selection.Count())
			m.err = nil
			m.state = statePurchasing
			if breakdown.FinalTotal <= 0 {
				return m, tea.Batch(m.purchaseCmd(m.flow.Showtime.Id, m.flow.SeatIDs()), m.spinner.Tick), true
			}
			return m, tea.Batch(m.createCheckoutCmd(), m.spinner.Tick), true
		case stateAwaitPayment:
			if m.checkoutID == "" {
				return m, nil, true
			}
			m.err = nil
			return m, m.fetchOrderCmd(m.checkoutID), true
		case stateSuccess:
			m.flow = nil
			m.checkoutURL = ""
			m.checkoutID = ""
			m.state = stateSelectMovie
			return m, nil, true
		case statePlans:
			item, ok := m.planList.SelectedItem().(planItem)
			if !ok || item.current {
				return m, nil, true
			}
			m.state = stateLoadingPlans
			return m, tea.Batch(m.subscribeCmd(item.plan.Slug), m.spinner.Tick), true
		}
	}
	return m, nil, false
}

func (m appModel) goBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateSelectCinema:
		m.flow = nil
		m.state = stateSelectMovie
	case stateSelectDate:
		m.flow.GoToStep(purchase.StepCinema)
		m.state = stateSelectCinema
	case stateSelectShowtime:
		m.state = stateSelectDate
	case stateSelectSeats:
		m.flow.GoToStep(purchase.StepShowtime)
		m.state = stateSelectShowtime
	case stateConfirm:
		m.flow.GoToStep(purchase.StepSeats)
		m.state = stateSelectSeats
	case stateAwaitPayment:
		m.checkoutURL = ""
		m.checkoutID = ""
		m.state = stateConfirm
	case stateSuccess:
		m.flow = nil
		m.state = stateSelectMovie
	case statePlans:
		m.planNotice = ""
		m.state = stateSelectMovie
	case stateError:
		m.err = nil
		m.state = m.lastState
	default:
		return m, nil
	}
	return m, nil
}

func (m appModel) forceLogin(notice string) appModel {
	_ = store.ClearSession()
	m.session = nil
	m.sub = nil
	m.flow = nil
	m.client.SetTokenSource(nil)
	m.login = newLoginForm()
	m.login.notice = notice
	m.err = nil
	m.state = stateLogin
	return m
}

func (m appModel) startAuthenticatedSession(session store.Session) (tea.Model, tea.Cmd) {
	s := session
	m.session = &s
	token := s.Token
	m.client.SetTokenSource(func() string { return token })
	if favorites, err := store.LoadFavorites(); err == nil {
		m.favorites = favorites
	}
	m.state = stateLoadingMovies
	return m, tea.Batch(m.fetchMoviesCmd(1), m.fetchSubscriptionCmd(""), m.spinner.Tick)
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectCinema:
		return &m.cinemaList
	case stateSelectShowtime:
		return &m.showtimeList
	case statePlans:
		return &m.planList
	default:
		return nil
	}
}

func (m *appModel) refreshMovieList() {
	m.movieList.SetItems(buildMovieItems(m.movies, m.favorites, m.favoritesOnly))
	title := strings.TrimSuffix(m.movieList.Title, " • favorites")
	if m.favoritesOnly {
		title += " • favorites"
	}
	m.movieList.Title = title
}

func (m appModel) isLoadingState() bool {
	switch m.state {
	case stateLoadingSession, stateAuthenticating, stateLoadingMovies, stateLoadingCinemas,
		stateLoadingShowtimes, stateLoadingSeats, statePurchasing, stateLoadingPlans:
		return true
	}
	return false
}

func (m appModel) loadingView() string {
	title := "Loading"
	switch m.state {
	case stateLoadingSession:
		title = "Restoring session"
	case stateAuthenticating:
		title = "Signing in"
	case stateLoadingMovies:
		title = "Loading movies"
	case stateLoadingCinemas:
		title = "Loading cinemas"
	case stateLoadingShowtimes:
		title = "Loading showtimes"
	case stateLoadingSeats:
		title = "Loading seat map"
	case statePurchasing:
		title = "Processing purchase"
	case stateLoadingPlans:
		title = "Loading plans"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Fetching data..."))
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.cinemaList.SetSize(m.width, h)
	m.dateList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
	m.planList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err}
	}
}

func errWithReturnCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState, returnStateSet: true}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingSession, stateAuthenticating:
		return stateLogin
	case stateLoadingMovies:
		return stateSelectMovie
	case stateLoadingCinemas:
		return stateSelectMovie
	case stateLoadingShowtimes:
		return stateSelectDate
	case stateLoadingSeats:
		return stateSelectShowtime
	case statePurchasing:
		return stateConfirm
	case stateLoadingPlans:
		return stateSelectMovie
	case stateError:
		return stateSelectMovie
	default:
		return state
	}
}

func loginError(err error) error {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) && len(vErrs) > 0 {
		switch vErrs[0].Field() {
		case "Email":
			return errors.New("enter a valid email address")
		case "Password":
			return errors.New("password must be at least 8 characters")
		}
	}
	var apiErr *service.APIError
	if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 {
		return errors.New(apiErr.Message())
	}
	if service.IsUnauthorized(err) {
		return errors.New("wrong email or password")
	}
	return err
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func openURL(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS for opening browser: %s", runtime.GOOS)
	}
}

func loadSessionCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := store.LoadSession()
		return sessionMsg{session: session, err: err}
	}
}

func (m appModel) loginCmd(creds model.Credentials) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := m.client.Login(ctx, creds)
		if err != nil {
			return authMsg{err: err}
		}
		return authMsg{session: store.Session{
			Token: res.Token,
			User:  model.User{Email: creds.Email},
		}}
	}
}

func (m appModel) fetchMoviesCmd(page int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := m.client.GetMovies(ctx, model.MovieListParams{Page: page})
		return moviesMsg{movies: res.Movies, pagination: res.Pagination, title: "Movies", err: err}
	}
}

func (m appModel) fetchPopularMoviesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		movies, err := m.client.GetPopularMovies(ctx)
		return moviesMsg{movies: movies, title: "Popular Movies", err: err}
	}
}

func (m appModel) searchMoviesCmd(query string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		movies, err := m.client.SearchMovies(ctx, query)
		if err == nil && len(movies) == 0 {
			err = fmt.Errorf("no movies matching %q", query)
		}
		return moviesMsg{movies: movies, title: fmt.Sprintf("Movies • %q", query), err: err}
	}
}

func toggleFavoriteCmd(movieID int) tea.Cmd {
	return func() tea.Msg {
		now, err := store.ToggleFavorite(movieID)
		return favoriteMsg{movieID: movieID, now: now, err: err}
	}
}

func (m appModel) fetchCinemasCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := m.client.SearchCinemas(ctx, model.CinemaSearchParams{Page: 1, Limit: 50})
		return cinemasMsg{cinemas: res.Cinemas, err: err}
	}
}

func (m appModel) fetchShowtimesCmd(date string) tea.Cmd {
	movieID := m.flow.MovieID
	cinemaID := 0
	if m.flow.Cinema != nil {
		cinemaID = m.flow.Cinema.Id
	}
	return func() tea.Msg {
		ctx := context.Background()
		results, err := m.client.SearchShowtimes(ctx, model.ShowtimeSearchParams{
			MovieId:  movieID,
			CinemaId: cinemaID,
			Date:     date,
		})
		return showtimesMsg{date: date, results: results, err: err}
	}
}

func (m appModel) fetchSeatDataCmd(seq int, showtimeID int, roomID int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		data, err := purchase.FetchShowtimeData(ctx, m.client, showtimeID, roomID)
		return seatDataMsg{seq: seq, data: data, err: err}
	}
}

func (m appModel) purchaseCmd(showtimeID int, seatIDs []int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		result, err := m.client.PurchaseTickets(ctx, showtimeID, seatIDs)
		return purchaseMsg{result: result, err: err}
	}
}

func (m appModel) createCheckoutCmd() tea.Cmd {
	req := model.CheckoutSessionRequest{
		ShowtimeId: m.flow.Showtime.Id,
		SeatIds:    m.flow.SeatIDs(),
		MovieId:    m.flow.MovieID,
	}
	if m.session != nil {
		req.CustomerEmail = m.session.User.Email
	}
	return func() tea.Msg {
		ctx := context.Background()
		session, err := m.client.CreateCheckoutSession(ctx, req)
		return checkoutMsg{session: session, err: err}
	}
}

func openCheckoutCmd(session model.CheckoutSession) tea.Cmd {
	return func() tea.Msg {
		// a failed browser launch is not fatal, the URL stays on screen
		_ = openURL(session.Url)
		return checkoutOpenedMsg{url: session.Url, id: session.SessionId}
	}
}

func (m appModel) fetchOrderCmd(sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		order, err := m.client.GetOrderBySession(ctx, sessionID)
		return orderMsg{order: order, err: err}
	}
}

func (m appModel) fetchSubscriptionCmd(notice string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sub, err := m.client.GetMySubscription(ctx)
		return subscriptionMsg{sub: sub, notice: notice, err: err}
	}
}

func (m appModel) subscribeCmd(plan model.PlanSlug) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		session, err := m.client.CreateSubscriptionCheckout(ctx, plan)
		if err != nil {
			return subscriptionMsg{err: err}
		}
		_ = openURL(session.Url)
		sub, err := m.client.GetMySubscription(ctx)
		if err != nil {
			return subscriptionMsg{err: err}
		}
		return subscriptionMsg{
			sub:    sub,
			notice: "Finish subscribing in your browser, then reopen Plans to refresh.",
		}
	}
}

func (m appModel) cancelSubscriptionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := m.client.CancelSubscription(ctx)
		if err != nil {
			return subscriptionMsg{err: err}
		}
		sub, err := m.client.GetMySubscription(ctx)
		if err != nil {
			return subscriptionMsg{err: err}
		}
		notice := res.Message
		if notice == "" {
			notice = fmt.Sprintf("Plan cancels at period end (%s).", res.CurrentPeriodEnd)
		}
		return subscriptionMsg{sub: sub, notice: notice}
	}
}

func (m appModel) reactivateSubscriptionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := m.client.ReactivateSubscription(ctx)
		if err != nil {
			return subscriptionMsg{err: err}
		}
		sub, err := m.client.GetMySubscription(ctx)
		if err != nil {
			return subscriptionMsg{err: err}
		}
		notice := res.Message
		if notice == "" {
			notice = "Plan reactivated."
		}
		return subscriptionMsg{sub: sub, notice: notice}
	}
}
