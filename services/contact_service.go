package services

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"

	"matrix-contacts/domain"
	"matrix-contacts/errors"
	"matrix-contacts/infrastructure/synadm"
)

type IContactService interface {
	Discover(ctx context.Context, user domain.Identity) (domain.Report, error)
}

// ContactService walks the rooms of a user one by one and unions their members.
type ContactService struct {
	client synadm.IAdminClient
	log    *slog.Logger
	// diagnostics receives one line per room that had to be skipped.
	diagnostics io.Writer
}

func NewContactService(client synadm.IAdminClient, log *slog.Logger, diagnostics io.Writer) IContactService {
	return &ContactService{client: client, log: log, diagnostics: diagnostics}
}

// Discover lists the rooms of user, then the members of each room in order.
// A failing room listing aborts the run. A failing member listing only skips
// that room, unless the admin command could not be started at all.
func (s *ContactService) Discover(ctx context.Context, user domain.Identity) (domain.Report, error) {
	// 1. Rooms are the primary source: no rooms, no report
	rooms, err := s.client.ListRooms(ctx, user)
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{Identity: user, Rooms: rooms}
	if !report.HasRooms() {
		s.log.Info("No rooms found", "user", user)
		return report, nil
	}

	// 2. Members, sequentially, one command at a time
	contacts := domain.NewContactSet(user)
	for _, room := range rooms {
		members, err := s.client.ListMembers(ctx, room)
		if err != nil {
			if goerrors.Is(err, errors.ErrCommandLaunch) {
				return domain.Report{}, err
			}
			s.skip(room, err)
			report.SkippedRooms = append(report.SkippedRooms, room)
			continue
		}
		contacts.Add(members...)
	}

	// 3. Aggregate
	report.Contacts = contacts.Sorted()
	s.log.Info("Contacts discovered",
		"user", user,
		"rooms", len(rooms),
		"skipped_rooms", len(report.SkippedRooms),
		"contacts", len(report.Contacts))
	return report, nil
}

func (s *ContactService) skip(room domain.RoomID, err error) {
	s.log.Warn("Skipping room", "room", room, "error", err)
	switch {
	case goerrors.Is(err, errors.ErrInvalidResponse):
		_, _ = fmt.Fprintf(s.diagnostics, "Failed to parse JSON from synadm room members for %s: %v\n", room, err)
	default:
		_, _ = fmt.Fprintf(s.diagnostics, "Error executing synadm room members for %s: %v\n", room, err)
	}
}
