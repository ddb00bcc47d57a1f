package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"rolesync/internal/domain"
	"rolesync/internal/domain/entities"
	"rolesync/internal/domain/rolename"
	"rolesync/internal/ports/input"
	"rolesync/internal/ports/output"
)

var _ input.EventSync = (*SyncService)(nil)

// SyncService keeps one mentionable role per scheduled event in step with the
// event's lifecycle. It holds no state of its own: every decision is derived
// from the notification's snapshot plus a fresh directory lookup, which makes
// redelivered and reordered notifications safe.
type SyncService struct {
	directory  output.RoleDirectory
	members    output.MemberDirectory
	events     output.EventGateway
	notifier   output.Notifier
	journal    output.SyncJournal
	translator output.T
	logger     *zap.Logger
}

func NewSyncService(
	directory output.RoleDirectory,
	members output.MemberDirectory,
	events output.EventGateway,
	notifier output.Notifier,
	journal output.SyncJournal,
	translator output.T,
	logger *zap.Logger,
) *SyncService {
	return &SyncService{
		directory:  directory,
		members:    members,
		events:     events,
		notifier:   notifier,
		journal:    journal,
		translator: translator,
		logger:     logger,
	}
}

// Handle routes one notification to its handler. Failures are scoped to the
// notification: the caller logs them and keeps dispatching.
func (s *SyncService) Handle(ctx context.Context, n entities.Notification) error {
	switch n.Kind {
	case entities.EventCreated:
		return s.handleCreated(ctx, n)
	case entities.EventDeleted:
		return s.purge(ctx, n.Event)
	case entities.EventUserAdded:
		return s.handleUserAdded(ctx, n)
	case entities.EventUserRemoved:
		return s.handleUserRemoved(ctx, n)
	case entities.EventUpdated:
		return s.handleUpdated(ctx, n)
	default:
		return fmt.Errorf("unhandled notification kind %d", n.Kind)
	}
}

// handleCreated creates the event's role, assigns the creator, then edits the
// event itself: the title is normalized to the derived role name and the
// description is marker-encoded so the update notification fired by that edit
// is recognized as our own.
func (s *SyncService) handleCreated(ctx context.Context, n entities.Notification) error {
	event := n.Event
	name := rolename.DeriveName(event)

	existing, err := s.directory.FindByName(ctx, event.GuildID, name)
	if err != nil && !errors.Is(err, domain.ErrRoleNotFound) {
		return fmt.Errorf("look up role %q: %w", name, err)
	}
	if existing != nil {
		s.logger.Info("role already exists, skipping creation",
			zap.String("guild_id", event.GuildID),
			zap.String("event_id", event.ID),
			zap.String("role", name))
		return nil
	}

	role, err := s.directory.Create(ctx, event.GuildID, name, true)
	if err != nil {
		return fmt.Errorf("create role %q: %w", name, err)
	}
	s.logger.Info("role created",
		zap.String("guild_id", event.GuildID),
		zap.String("event_id", event.ID),
		zap.String("role", name))
	s.record(ctx, event, entities.ActionRoleCreated, name, "")

	if event.CreatorID != "" {
		if err := s.assignCreator(ctx, n, role); err != nil {
			// The role and the event edit do not depend on the creator.
			s.logger.Warn("creator could not be assigned to the event role",
				zap.String("event_id", event.ID),
				zap.String("creator_id", event.CreatorID),
				zap.Error(err))
		}
	}

	desc := rolename.EncodeMarker(event.Description)
	edit := entities.EventEdit{Name: &name, Description: &desc}
	if err := s.events.EditEvent(ctx, event.GuildID, event.ID, edit); err != nil {
		return fmt.Errorf("normalize event %s title: %w", event.ID, err)
	}
	return nil
}

func (s *SyncService) assignCreator(ctx context.Context, n entities.Notification, role *entities.Role) error {
	event := n.Event
	member, err := s.members.Member(ctx, event.GuildID, event.CreatorID)
	if err != nil {
		return fmt.Errorf("resolve creator %s: %w", event.CreatorID, err)
	}
	if err := s.directory.AddToMember(ctx, event.GuildID, member.UserID, role.ID); err != nil {
		return fmt.Errorf("assign role %q to creator: %w", role.Name, err)
	}
	s.logger.Info("role assigned to event creator",
		zap.String("event_id", event.ID),
		zap.String("role", role.Name),
		zap.String("user_id", member.UserID))
	s.record(ctx, event, entities.ActionMemberAdded, role.Name, member.UserID)
	s.notifyAssigned(ctx, n.Locale, member.UserID, role.Name, event.Name)
	return nil
}

func (s *SyncService) notifyAssigned(ctx context.Context, locale, userID, roleName, eventName string) {
	content := s.translator.T(locale, "dm.role_assigned", map[string]any{
		"Role":  roleName,
		"Event": eventName,
	})
	if content == "" {
		return
	}
	if err := s.notifier.DirectMessage(ctx, userID, content); err != nil {
		s.logger.Debug("assignment DM not delivered",
			zap.String("user_id", userID),
			zap.Error(err))
	}
}

func (s *SyncService) handleUserAdded(ctx context.Context, n entities.Notification) error {
	event := n.Event
	name := rolename.DeriveName(event)

	role, err := s.directory.FindByName(ctx, event.GuildID, name)
	if errors.Is(err, domain.ErrRoleNotFound) {
		// Absence is not repaired here: the role is only ever created by the
		// creation notification.
		s.logger.Info("no role for event, interest ignored",
			zap.String("event_id", event.ID),
			zap.String("role", name))
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up role %q: %w", name, err)
	}

	member, err := s.members.Member(ctx, event.GuildID, n.UserID)
	if err != nil {
		s.logger.Warn("interested user could not be resolved",
			zap.String("event_id", event.ID),
			zap.String("user_id", n.UserID),
			zap.Error(err))
		return nil
	}
	if err := s.directory.AddToMember(ctx, event.GuildID, member.UserID, role.ID); err != nil {
		return fmt.Errorf("assign role %q to member %s: %w", role.Name, member.UserID, err)
	}
	s.logger.Info("role assigned to interested user",
		zap.String("event_id", event.ID),
		zap.String("role", role.Name),
		zap.String("user_id", member.UserID))
	s.record(ctx, event, entities.ActionMemberAdded, role.Name, member.UserID)
	return nil
}

func (s *SyncService) handleUserRemoved(ctx context.Context, n entities.Notification) error {
	event := n.Event
	name := rolename.DeriveName(event)

	role, err := s.directory.FindByName(ctx, event.GuildID, name)
	if errors.Is(err, domain.ErrRoleNotFound) {
		s.logger.Debug("no role for event, withdrawal ignored",
			zap.String("event_id", event.ID),
			zap.String("role", name))
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up role %q: %w", name, err)
	}

	member, err := s.members.Member(ctx, event.GuildID, n.UserID)
	if err != nil {
		s.logger.Warn("withdrawing user could not be resolved",
			zap.String("event_id", event.ID),
			zap.String("user_id", n.UserID),
			zap.Error(err))
		return nil
	}
	if err := s.directory.RemoveFromMember(ctx, event.GuildID, member.UserID, role.ID); err != nil {
		return fmt.Errorf("remove role %q from member %s: %w", role.Name, member.UserID, err)
	}
	s.logger.Info("role removed from user",
		zap.String("event_id", event.ID),
		zap.String("role", role.Name),
		zap.String("user_id", member.UserID))
	s.record(ctx, event, entities.ActionMemberRemoved, role.Name, member.UserID)
	return nil
}

// handleUpdated evaluates the two concerns of an event update: a name change
// to propagate (unless it is the echo of our own edit) and a transition to
// completed, which purges the role.
func (s *SyncService) handleUpdated(ctx context.Context, n entities.Notification) error {
	if n.Update == nil {
		return fmt.Errorf("update notification without before/after snapshots")
	}
	before, after := n.Update.Before, n.Update.After

	if before.Name != after.Name {
		if marked, original := rolename.DecodeMarker(after.Description); marked {
			// Echo of our own rename. Restore the description the marker was
			// stamped over and take no role action, otherwise every rename we
			// issue would recurse.
			edit := entities.EventEdit{Description: &original}
			if err := s.events.EditEvent(ctx, after.GuildID, after.ID, edit); err != nil {
				return fmt.Errorf("restore event %s description: %w", after.ID, err)
			}
			s.logger.Debug("suppressed self-triggered rename",
				zap.String("event_id", after.ID),
				zap.String("name", after.Name))
			return nil
		}
		if err := s.propagateRename(ctx, before, after); err != nil {
			return err
		}
	}

	if after.Status == entities.EventStatusCompleted {
		return s.purge(ctx, after)
	}
	return nil
}

// propagateRename renames the event's role to follow a user-issued rename of
// the event. When the new event name does not yet carry the disambiguating
// prefix, the event itself is renamed to the prefixed form first, with a
// marker-encoded description so the resulting echo is suppressed.
func (s *SyncService) propagateRename(ctx context.Context, before, after entities.ScheduledEvent) error {
	newName := rolename.DeriveName(after)

	if !rolename.HasOwnPrefix(after) {
		desc := rolename.EncodeMarker(after.Description)
		edit := entities.EventEdit{Name: &newName, Description: &desc}
		if err := s.events.EditEvent(ctx, after.GuildID, after.ID, edit); err != nil {
			return fmt.Errorf("prefix event %s name: %w", after.ID, err)
		}
	}

	role, err := s.directory.FindByName(ctx, after.GuildID, before.Name)
	if errors.Is(err, domain.ErrRoleNotFound) {
		// Unlike every other lookup miss this one is not benign: a live event
		// is supposed to keep exactly one role under its previous name.
		s.logger.Error("role missing under pre-rename name",
			zap.String("guild_id", after.GuildID),
			zap.String("event_id", after.ID),
			zap.String("old_name", before.Name),
			zap.String("new_name", newName))
		return fmt.Errorf("rename role %q to %q: %w", before.Name, newName, domain.ErrRoleNotFoundOnRename)
	}
	if err != nil {
		return fmt.Errorf("look up role %q: %w", before.Name, err)
	}

	if err := s.directory.Rename(ctx, after.GuildID, role.ID, newName); err != nil {
		return fmt.Errorf("rename role %q to %q: %w", before.Name, newName, err)
	}
	s.logger.Info("role renamed",
		zap.String("event_id", after.ID),
		zap.String("old_name", before.Name),
		zap.String("new_name", newName))
	s.record(ctx, after, entities.ActionRoleRenamed, newName, "renamed from "+before.Name)
	return nil
}

// purge removes the event's role from every member holding it and deletes the
// role. Shared by the deletion handler and the completed transition. Absence
// of the role is a no-op.
func (s *SyncService) purge(ctx context.Context, event entities.ScheduledEvent) error {
	name := rolename.DeriveName(event)

	role, err := s.directory.FindByName(ctx, event.GuildID, name)
	if errors.Is(err, domain.ErrRoleNotFound) {
		s.logger.Debug("no role to purge",
			zap.String("event_id", event.ID),
			zap.String("role", name))
		return nil
	}
	if err != nil {
		return fmt.Errorf("look up role %q: %w", name, err)
	}

	members, err := s.members.Members(ctx, event.GuildID)
	if err != nil {
		return fmt.Errorf("list members of guild %s: %w", event.GuildID, err)
	}
	for _, m := range members {
		if !m.HasRole(role.ID) {
			continue
		}
		if err := s.directory.RemoveFromMember(ctx, event.GuildID, m.UserID, role.ID); err != nil {
			return fmt.Errorf("remove role %q from member %s: %w", role.Name, m.UserID, err)
		}
		s.record(ctx, event, entities.ActionMemberRemoved, role.Name, m.UserID)
	}

	if err := s.directory.Delete(ctx, event.GuildID, role.ID); err != nil {
		return fmt.Errorf("delete role %q: %w", role.Name, err)
	}
	s.logger.Info("role deleted",
		zap.String("guild_id", event.GuildID),
		zap.String("event_id", event.ID),
		zap.String("role", role.Name))
	s.record(ctx, event, entities.ActionRoleDeleted, role.Name, event.Status.String())
	return nil
}

// record appends one executed operation to the audit journal. Journal
// failures never fail the operation they describe.
func (s *SyncService) record(ctx context.Context, event entities.ScheduledEvent, action, roleName, detail string) {
	err := s.journal.Record(ctx, entities.RoleAction{
		GuildID:  event.GuildID,
		EventID:  event.ID,
		Action:   action,
		RoleName: roleName,
		Detail:   detail,
		At:       time.Now(),
	})
	if err != nil {
		s.logger.Warn("journal write failed",
			zap.String("action", action),
			zap.Error(err))
	}
}
