//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../../mocks/mock_admin_client.go -package=mocks
package synadm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"matrix-contacts/domain"
)

// IAdminClient exposes the two queries the contact discovery needs
// from the homeserver administration interface.
type IAdminClient interface {
	ListRooms(ctx context.Context, user domain.Identity) ([]domain.RoomID, error)
	ListMembers(ctx context.Context, room domain.RoomID) ([]domain.Identity, error)
}

type Client struct {
	runner ICommandRunner
	log    *slog.Logger
	// echo prints raw responses in debug mode, nil otherwise.
	echo func(line string)
}

func NewClient(runner ICommandRunner, log *slog.Logger, echo func(line string)) IAdminClient {
	return &Client{runner: runner, log: log, echo: echo}
}

// ListRooms runs "user rooms <user>". Every failure is returned to the caller.
func (c *Client) ListRooms(ctx context.Context, user domain.Identity) ([]domain.RoomID, error) {
	body, err := c.runner.Run(ctx, "user", "rooms", user.String())
	if err != nil {
		return nil, fmt.Errorf("synadm user rooms: %w", err)
	}
	if c.echo != nil {
		c.echo("response: " + strings.TrimSpace(string(body)))
	}

	rooms, err := ParseRooms(body)
	if err != nil {
		return nil, fmt.Errorf("synadm user rooms: %w", err)
	}
	c.log.Debug("Rooms listed", "user", user, "count", len(rooms))
	return rooms, nil
}

// ListMembers runs "room members <room>". Errors are returned unwrapped;
// the caller names the room when it reports them.
func (c *Client) ListMembers(ctx context.Context, room domain.RoomID) ([]domain.Identity, error) {
	body, err := c.runner.Run(ctx, "room", "members", room.String())
	if err != nil {
		return nil, err
	}

	members, err := ParseMembers(body)
	if err != nil {
		return nil, err
	}
	c.log.Debug("Members listed", "room", room, "count", len(members))
	return members, nil
}
