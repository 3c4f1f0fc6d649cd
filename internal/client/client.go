package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"smartpg/internal/domain/model"
)

// TotalRooms is the facility capacity the dashboard reports against.
const TotalRooms = 50

var (
	// ErrServerUnreachable distinguishes connectivity failures from
	// credential rejections and other server-reported errors.
	ErrServerUnreachable = errors.New("server not reachable")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrNotAuthenticated  = errors.New("not logged in")
	// ErrReplyPending rejects a chat send while the previous reply is
	// outstanding; the UI disables input for the same reason.
	ErrReplyPending = errors.New("a reply is still pending")
)

// APIError carries a server-reported error string, shown to the user
// verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// Client is the non-presentational core of the SPA: session handling, the
// role-gated tab router, the four-way initial fetch and the pessimistic
// mutation pattern every feature view uses. Collections hold whatever the
// server last confirmed; a failed mutation leaves them untouched.
//
// Apart from LoadAll's fan-out, the client is driven from a single UI
// goroutine and does no locking of its own.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	session      *SessionStore
	chatAllRoles bool

	user   *model.User
	token  string
	router *TabRouter

	loading bool

	Complaints []model.Complaint
	Notices    []model.Notice
	Residents  []model.User
	Menu       model.WeeklyMenu

	transcript   []model.ChatMessage
	replyPending bool
}

// New builds a client and restores any persisted session, which is
// consulted only here and on explicit login/logout.
func New(baseURL string, session *SessionStore, chatAllRoles bool) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{},
		session:      session,
		chatAllRoles: chatAllRoles,
	}
	if sess := session.Restore(); sess != nil {
		c.user = sess.User
		c.token = sess.Token
		c.router = NewTabRouter(sess.User.Role, chatAllRoles)
	}
	return c
}

func (c *Client) CurrentUser() *model.User { return c.user }
func (c *Client) Router() *TabRouter       { return c.router }
func (c *Client) Loading() bool            { return c.loading }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type authResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Login authenticates under the selected role. On success the returned user
// becomes the session and is persisted; on failure nothing is stored and
// the client stays anonymous.
func (c *Client) Login(ctx context.Context, email, password, role string) error {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/login", loginRequest{Email: email, Password: password, Role: role}, &resp)
	if err != nil {
		return withFallbackMessage(err, "Login failed")
	}
	if resp.User == nil {
		return &APIError{Status: http.StatusOK, Message: "Login failed"}
	}

	c.user = resp.User
	c.token = resp.Token
	c.router = NewTabRouter(resp.User.Role, c.chatAllRoles)
	if err := c.session.Save(&Session{User: resp.User, Token: resp.Token}); err != nil {
		log.Printf("WARN: failed to persist session: %v", err)
	}
	return nil
}

// RegistrationForm is the self-registration input, including the local-only
// confirmation field.
type RegistrationForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
	RoomNumber      string `json:"roomNumber"`
	PhoneNumber     string `json:"phoneNumber"`
}

// Register creates a resident account. A password/confirmation mismatch
// fails fast without touching the network. Success does not log in; the
// caller returns to the login screen.
func (c *Client) Register(ctx context.Context, form RegistrationForm) error {
	if form.Password != form.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := c.do(ctx, http.MethodPost, "/api/register", form, nil); err != nil {
		return withFallbackMessage(err, "Registration failed")
	}
	return nil
}

// Logout clears the persisted session and resets the client to the
// anonymous state, active tab back at the default.
func (c *Client) Logout() error {
	c.user = nil
	c.token = ""
	c.router = nil
	c.transcript = nil
	return c.session.Clear()
}

// LoadAll issues the four collection fetches concurrently. Failures are
// isolated per collection: a failed fetch degrades to an empty collection
// and a console log, and an incomplete menu is healed from the built-in
// default and pushed back to the server. The loading flag gates the whole
// authenticated UI until all four settle.
func (c *Client) LoadAll(ctx context.Context) error {
	if c.user == nil {
		return ErrNotAuthenticated
	}
	c.loading = true
	defer func() { c.loading = false }()

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		complaints := []model.Complaint{}
		if err := c.do(ctx, http.MethodGet, "/api/complaints", nil, &complaints); err != nil {
			log.Printf("WARN: complaints fetch failed: %v", err)
			complaints = []model.Complaint{}
		}
		c.Complaints = complaints
	}()

	go func() {
		defer wg.Done()
		notices := []model.Notice{}
		if err := c.do(ctx, http.MethodGet, "/api/notices", nil, &notices); err != nil {
			log.Printf("WARN: notices fetch failed: %v", err)
			notices = []model.Notice{}
		}
		c.Notices = notices
	}()

	go func() {
		defer wg.Done()
		residents := []model.User{}
		if err := c.do(ctx, http.MethodGet, "/api/residents", nil, &residents); err != nil {
			log.Printf("WARN: residents fetch failed: %v", err)
			residents = []model.User{}
		}
		c.Residents = residents
	}()

	go func() {
		defer wg.Done()
		var menu model.WeeklyMenu
		err := c.do(ctx, http.MethodGet, "/api/menu", nil, &menu)
		if err != nil || !menu.Complete() {
			if err != nil {
				log.Printf("WARN: menu fetch failed: %v", err)
			}
			menu = menu.Normalize()
			// Self-healing write-back; non-admin sessions get rejected
			// server-side, and the healed copy still renders locally.
			if werr := c.do(ctx, http.MethodPost, "/api/menu", menu, nil); werr != nil {
				log.Printf("WARN: menu write-back failed: %v", werr)
			}
		}
		c.Menu = menu
	}()

	wg.Wait()
	return nil
}

// --- Complaints ---

func (c *Client) AddComplaint(ctx context.Context, complaintType, description string) (*model.Complaint, error) {
	body := map[string]string{"type": complaintType, "description": description}
	var created model.Complaint
	if err := c.do(ctx, http.MethodPost, "/api/complaints", body, &created); err != nil {
		return nil, err
	}
	c.Complaints = append([]model.Complaint{created}, c.Complaints...)
	return &created, nil
}

func (c *Client) UpdateComplaintStatus(ctx context.Context, id string, status model.ComplaintStatus) error {
	var updated model.Complaint
	if err := c.do(ctx, http.MethodPut, "/api/complaints/"+id, map[string]model.ComplaintStatus{"status": status}, &updated); err != nil {
		return err
	}
	for i := range c.Complaints {
		if c.Complaints[i].ID == updated.ID {
			c.Complaints[i] = updated
		}
	}
	return nil
}

// ComplaintsFor filters the shared collection down to one resident's view.
func (c *Client) ComplaintsFor(residentID string) []model.Complaint {
	out := []model.Complaint{}
	for _, complaint := range c.Complaints {
		if complaint.ResidentID == residentID {
			out = append(out, complaint)
		}
	}
	return out
}

// --- Notices ---

func (c *Client) AddNotice(ctx context.Context, title, content string) (*model.Notice, error) {
	body := map[string]string{"title": title, "content": content}
	var created model.Notice
	if err := c.do(ctx, http.MethodPost, "/api/notices", body, &created); err != nil {
		return nil, err
	}
	c.Notices = append([]model.Notice{created}, c.Notices...)
	return &created, nil
}

func (c *Client) DeleteNotice(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/notices/"+id, nil, nil); err != nil {
		return err
	}
	kept := c.Notices[:0:0]
	for _, n := range c.Notices {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.Notices = kept
	return nil
}

// --- Residents ---

func (c *Client) AddResident(ctx context.Context, form RegistrationForm) (*model.User, error) {
	if form.Password != form.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	var created model.User
	if err := c.do(ctx, http.MethodPost, "/api/residents", form, &created); err != nil {
		return nil, err
	}
	c.Residents = append([]model.User{created}, c.Residents...)
	return &created, nil
}

// UpdateRent toggles one resident's rent flag; only that record changes.
func (c *Client) UpdateRent(ctx context.Context, id string, paid bool) error {
	var updated model.User
	if err := c.do(ctx, http.MethodPut, "/api/user/"+id, map[string]bool{"isRentPaid": paid}, &updated); err != nil {
		return err
	}
	c.mergeResident(updated)
	return nil
}

// DeleteResident removes exactly the targeted id, server first.
func (c *Client) DeleteResident(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/user/"+id, nil, nil); err != nil {
		return err
	}
	kept := c.Residents[:0:0]
	for _, r := range c.Residents {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	c.Residents = kept
	return nil
}

// ProfileUpdate is the self-service subset of a profile edit.
type ProfileUpdate struct {
	Name        *string `json:"name,omitempty"`
	Password    *string `json:"password,omitempty"`
	RoomNumber  *string `json:"roomNumber,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UpdateProfile edits the session user's own record and keeps the persisted
// session copy in step with the server's response.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	if c.user == nil {
		return ErrNotAuthenticated
	}
	var updated model.User
	if err := c.do(ctx, http.MethodPut, "/api/user/"+c.user.ID, update, &updated); err != nil {
		return err
	}
	c.user = &updated
	c.mergeResident(updated)
	if err := c.session.Save(&Session{User: &updated, Token: c.token}); err != nil {
		log.Printf("WARN: failed to persist session: %v", err)
	}
	return nil
}

func (c *Client) mergeResident(updated model.User) {
	for i := range c.Residents {
		if c.Residents[i].ID == updated.ID {
			c.Residents[i] = updated
		}
	}
}

// --- Menu ---

func (c *Client) SaveMenu(ctx context.Context, menu model.WeeklyMenu) error {
	var stored model.WeeklyMenu
	if err := c.do(ctx, http.MethodPost, "/api/menu", menu, &stored); err != nil {
		return err
	}
	c.Menu = stored
	return nil
}

// --- Dashboard ---

type DashboardStats struct {
	TotalRooms        int
	Occupied          int
	PendingComplaints int
	Notices           int
}

func (c *Client) Stats() DashboardStats {
	stats := DashboardStats{TotalRooms: TotalRooms, Notices: len(c.Notices)}
	for _, r := range c.Residents {
		if r.Role == model.RoleResident {
			stats.Occupied++
		}
	}
	for _, complaint := range c.Complaints {
		if complaint.Status == model.ComplaintPending {
			stats.PendingComplaints++
		}
	}
	return stats
}

// --- Chat ---

func (c *Client) Transcript() []model.ChatMessage { return c.transcript }

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Send forwards one user turn to the assistant. Only one request may be in
// flight; while a reply is pending further sends are rejected. A transport
// failure appends the fallback apology instead of an error; the transcript
// never sees a raw failure, and prior messages are never touched.
func (c *Client) Send(ctx context.Context, text string) (string, error) {
	if c.user == nil {
		return "", ErrNotAuthenticated
	}
	if c.replyPending {
		return "", ErrReplyPending
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty message")
	}

	c.replyPending = true
	defer func() { c.replyPending = false }()

	c.transcript = append(c.transcript, model.ChatMessage{
		Sender: model.ChatSenderUser,
		Text:   text,
		SentAt: time.Now(),
	})

	reply := model.ChatFallbackReply
	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, "/api/chat", chatRequest{Message: text}, &resp); err != nil {
		log.Printf("WARN: chat request failed: %v", err)
	} else if resp.Reply != "" {
		reply = resp.Reply
	}

	c.transcript = append(c.transcript, model.ChatMessage{
		Sender: model.ChatSenderAssistant,
		Text:   reply,
		SentAt: time.Now(),
	})
	return reply, nil
}

// --- transport ---

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// withFallbackMessage substitutes a generic message when the server did not
// provide one; server-provided strings pass through verbatim.
func withFallbackMessage(err error, fallback string) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message == "" {
		apiErr.Message = fallback
	}
	return err
}
