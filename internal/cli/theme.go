package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/spf13/cobra"
)

const (
	themeDark  = "dark"
	themeLight = "light"
)

// loadTheme reads the theme key. An absent key means light.
func loadTheme(ctx context.Context, store repository.KVStore) (string, error) {
	v, err := store.Get(ctx, repository.KeyTheme)
	if errors.Is(err, repository.ErrNotFound) {
		return themeLight, nil
	}
	if err != nil {
		return "", err
	}
	if v == themeDark {
		return themeDark, nil
	}
	return themeLight, nil
}

// saveTheme stores "dark" or removes the key for light.
func saveTheme(ctx context.Context, store repository.KVStore, theme string) error {
	if theme == themeDark {
		return store.Set(ctx, repository.KeyTheme, themeDark)
	}
	return store.Delete(ctx, repository.KeyTheme)
}

func paletteFor(theme string) formatter.Palette {
	if theme == themeDark {
		return formatter.DarkPalette
	}
	return formatter.LightPalette
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [dark|light|toggle]",
		Short:     "Show or change the color theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{themeDark, themeLight, "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			current, err := loadTheme(ctx, app.Store)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", current)
				return nil
			}

			next := args[0]
			switch next {
			case "toggle":
				next = themeDark
				if current == themeDark {
					next = themeLight
				}
			case themeDark, themeLight:
			default:
				return fmt.Errorf("unknown theme %q (want dark, light or toggle)", next)
			}
			if err := saveTheme(ctx, app.Store, next); err != nil {
				return err
			}
			formatter.ApplyPalette(paletteFor(next))
			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", next)
			return nil
		},
	}
}
