package domain

import "context"

// Game is an open-table game posted by a member.
// swagger:model Game
type Game struct {
	ID           ID     `json:"id,omitempty"`
	Title        string `json:"title"`
	Organizer    string `json:"organizer"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Players      Text   `json:"players"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
	Password     string `json:"password,omitempty"`
	Catalogue    ID     `json:"catalogue,omitempty"`
	Participants Names  `json:"participants,omitempty"`
}

// GameView is a Game decorated for the games tab. The password never leaves
// the service in a view. Attendees lists the organizer followed by everyone
// who RSVP'd.
// swagger:model GameView
type GameView struct {
	*Game
	DateDisplay string     `json:"dateDisplay"`
	TimeDisplay string     `json:"timeDisplay"`
	Attendees   string     `json:"attendees"`
	Form        FormFields `json:"form"`
}

// Room options for games large enough to need the back room.
const (
	RoomHalf = "half"
	RoomFull = "full"
)

// RoomBooking is the extra information sent for games at or above the room
// booking threshold.
type RoomBooking struct {
	Room  string `json:"halfPrivateRoom"`
	Email string `json:"email"`
	Name  string `json:"firstLastName"`
}

// GameInput carries the create/edit game form. Times are "HH:MM" or a slot
// label such as "4:00 PM"; both times fall on Date.
type GameInput struct {
	Title       string
	Organizer   string
	Date        string
	StartTime   string
	EndTime     string
	Players     string
	Description string
	Password    string
	Catalogue   string
	Booking     *RoomBooking
}

// EditGrant is what a caller presents to edit or delete a game: an admin
// session or the game's password.
type EditGrant struct {
	Auth     AuthContext
	Password string
}

// Sort orders for the games tab.
const (
	SortByTitle = "title"
	SortByStart = "start"
)

// GameRepository is the hub backend's game collection.
type GameRepository interface {
	List(ctx context.Context) ([]*Game, error)
	Create(ctx context.Context, game *Game) error
	CreateWithRoom(ctx context.Context, game *Game, booking *RoomBooking) error
	Update(ctx context.Context, game *Game) error
	Delete(ctx context.Context, id ID) error
	VerifyPassword(ctx context.Context, id ID, password string) (bool, error)
}

// GameService defines the games tab.
type GameService interface {
	ListGames(ctx context.Context, query, sortBy string) ([]*GameView, error)
	SlotsForDate(date string) ([]string, error)
	CreateGame(ctx context.Context, in *GameInput) (*Game, error)
	UpdateGame(ctx context.Context, grant EditGrant, id ID, in *GameInput) (*Game, error)
	DeleteGame(ctx context.Context, grant EditGrant, id ID) error
	RSVP(ctx context.Context, id ID, participant string) error
}
