package main

import (
	"fmt"
	"log/slog"
	"strings"
	"teammate-chat/domain/chat"
	"teammate-chat/infrastructure/storage"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

var (
	unreadOnly bool
	dumpPrefix string
)

func init() {
	notificationsCmd.Flags().BoolVar(&unreadOnly, "unread", false, "only unread notifications")
	dumpCmd.Flags().StringVar(&dumpPrefix, "prefix", "", "only keys starting with prefix (conv:, msg:, last:, notif:, profile:, typing:)")
	rootCmd.AddCommand(conversationsCmd, historyCmd, notificationsCmd, dumpCmd)
}

var conversationsCmd = &cobra.Command{
	Use:   "conversations <participant>",
	Short: "List the conversations of a participant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(false)
		if err != nil {
			return err
		}
		defer db.Close()

		conversations, err := storage.NewConversationRepository(db, slog.Default()).
			ListForParticipant(chat.ParticipantID(args[0]))
		if err != nil {
			return fmt.Errorf("list conversations: %w", err)
		}
		if len(conversations) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), color.Yellow.Sprint("No conversations found."))
			return nil
		}

		table := newTable(cmd.OutOrStdout(), "ID", "Kind", "Title", "Members", "Created")
		for _, c := range conversations {
			kind, title := "direct", ""
			if c.IsGroup {
				kind = "group"
			}
			if c.Title != nil {
				title = *c.Title
			}
			members := make([]string, 0, len(c.Members))
			for _, m := range c.Members {
				members = append(members, string(m))
			}
			table.Append([]string{string(c.ID), kind, title, strings.Join(members, ","), shortTime(c.CreatedAt)})
		}
		table.Render()
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <conversation-id>",
	Short: "Print the messages of a conversation, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(false)
		if err != nil {
			return err
		}
		defer db.Close()

		messages, err := storage.NewMessageRepository(db, slog.Default()).
			GetMessages(chat.ConversationID(args[0]))
		if err != nil {
			return fmt.Errorf("get history: %w", err)
		}
		profiles := storage.NewProfileRepository(db)

		table := newTable(cmd.OutOrStdout(), "At", "Sender", "Content")
		for _, m := range messages {
			sender := string(m.Sender)
			if name, ok, err := profiles.LookupDisplayName(m.Sender); err == nil && ok {
				sender = name
			}
			table.Append([]string{shortTime(m.CreatedAt), color.Cyan.Sprint(sender), m.Content})
		}
		table.Render()
		return nil
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications <participant>",
	Short: "List the notifications of a participant, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(false)
		if err != nil {
			return err
		}
		defer db.Close()

		notifications, err := storage.NewNotificationRepository(db, slog.Default()).
			ListNotifications(chat.ParticipantID(args[0]), unreadOnly)
		if err != nil {
			return fmt.Errorf("list notifications: %w", err)
		}

		table := newTable(cmd.OutOrStdout(), "ID", "At", "From", "Conversation", "Preview", "Read")
		for _, n := range notifications {
			read := color.Green.Sprint("yes")
			if !n.Read {
				read = color.Yellow.Sprint("no")
			}
			table.Append([]string{n.ID.String(), shortTime(n.CreatedAt), string(n.Payload.Sender),
				string(n.Payload.ConversationID), n.Payload.ContentPreview, read})
		}
		table.Render()
		return nil
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print every stored record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(false)
		if err != nil {
			return err
		}
		defer db.Close()

		table := newTable(cmd.OutOrStdout(), "Key", "Type", "At", "Detail")
		err = storage.Scan(db, dumpPrefix, func(key string, record storage.Record, err error) {
			detail := record.Detail
			if err != nil {
				detail = color.Red.Sprintf("decode failed: %v", err)
			}
			table.Append([]string{key, record.Kind, shortTime(record.At), detail})
		})
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		table.Render()
		return nil
	},
}
