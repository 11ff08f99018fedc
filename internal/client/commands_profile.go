package client

import (
	"errors"

	"github.com/MKhiriev/go-linkup/models"
	"github.com/spf13/cobra"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "profile",
		Short:             "Edit your own profile",
		PersistentPreRunE: a.chainPreRun(a.requireToken),
	}
	cmd.AddCommand(a.profileUpdateCmd(), a.profileAvatarCmd(), a.profileWorkCmd(), a.profileEducationCmd())
	return cmd
}

// chainPreRun keeps the root PersistentPreRunE (token loading) when a
// subcommand defines its own; cobra runs only the nearest one.
func (a *App) chainPreRun(next func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if root := cmd.Root(); root.PersistentPreRunE != nil {
			if err := root.PersistentPreRunE(cmd, args); err != nil {
				return err
			}
		}
		return next(cmd, args)
	}
}

func (a *App) profileUpdateCmd() *cobra.Command {
	var username, name, headline, bio, location string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change username, name, headline, bio or location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var update models.ProfileUpdate
			// only flags given on the command line are sent
			flags := cmd.Flags()
			if flags.Changed("username") {
				update.Username = &username
			}
			if flags.Changed("name") {
				update.Name = &name
			}
			if flags.Changed("headline") {
				update.Headline = &headline
			}
			if flags.Changed("bio") {
				update.Bio = &bio
			}
			if flags.Changed("location") {
				update.Location = &location
			}
			if update.IsEmpty() {
				return errors.New("nothing to update")
			}

			profile, err := a.adapter.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profile)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "new username")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&headline, "headline", "", "one line headline")
	cmd.Flags().StringVar(&bio, "bio", "", "free text bio")
	cmd.Flags().StringVar(&location, "location", "", "location")

	return cmd
}

func (a *App) profileAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <media-reference>",
		Short: "Set the avatar media reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.adapter.SetAvatar(cmd.Context(), models.AvatarUpdate{Avatar: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), profile)
		},
	}
}

func (a *App) profileWorkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "work",
		Short: "Add or delete work history entries",
	}

	var entry models.WorkHistoryEntry
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a work history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.changeWorkHistory(cmd, models.WorkHistoryChange{Action: models.WorkHistoryAdd, Entry: entry})
		},
	}
	add.Flags().StringVar(&entry.Company, "company", "", "company name")
	add.Flags().StringVar(&entry.Position, "position", "", "position held")
	add.Flags().StringVar(&entry.Years, "years", "", "period, e.g. 2019-2023")
	_ = add.MarkFlagRequired("company")
	_ = add.MarkFlagRequired("position")

	del := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete a work history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.changeWorkHistory(cmd, models.WorkHistoryChange{Action: models.WorkHistoryDelete, ID: args[0]})
		},
	}

	cmd.AddCommand(add, del)
	return cmd
}

func (a *App) changeWorkHistory(cmd *cobra.Command, change models.WorkHistoryChange) error {
	profile, err := a.adapter.UpdateProfile(cmd.Context(), models.ProfileUpdate{WorkHistory: &change})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), profile)
}

func (a *App) profileEducationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "education",
		Aliases: []string{"edu"},
		Short:   "Add or delete education entries",
	}

	var entry models.EducationEntry
	add := &cobra.Command{
		Use:   "add",
		Short: "Add an education entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.changeEducation(cmd, models.EducationChange{Action: models.WorkHistoryAdd, Entry: entry})
		},
	}
	add.Flags().StringVar(&entry.School, "school", "", "school name")
	add.Flags().StringVar(&entry.Degree, "degree", "", "degree")
	add.Flags().StringVar(&entry.Field, "field", "", "field of study")
	add.Flags().StringVar(&entry.Years, "years", "", "period, e.g. 2015-2019")
	_ = add.MarkFlagRequired("school")

	del := &cobra.Command{
		Use:   "delete <entry-id>",
		Short: "Delete an education entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.changeEducation(cmd, models.EducationChange{Action: models.WorkHistoryDelete, ID: args[0]})
		},
	}

	cmd.AddCommand(add, del)
	return cmd
}

func (a *App) changeEducation(cmd *cobra.Command, change models.EducationChange) error {
	profile, err := a.adapter.UpdateProfile(cmd.Context(), models.ProfileUpdate{Education: &change})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), profile)
}
