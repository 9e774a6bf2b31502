package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Two-Ocean/armory/internal/catalog"
	"github.com/Two-Ocean/armory/internal/entities"
	armoryorch "github.com/Two-Ocean/armory/internal/orchestrators/armory"
	"github.com/Two-Ocean/armory/internal/progression"
	redisclient "github.com/Two-Ocean/armory/internal/redis"
	loadoutrepo "github.com/Two-Ocean/armory/internal/repositories/loadout"
	"github.com/Two-Ocean/armory/internal/scene"
	"github.com/Two-Ocean/armory/internal/services/armory"
)

var (
	demoDataPath     string
	demoRedisAddress string
	demoOwnerID      string
	demoXP           int64
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless loadout session against Redis",
	Long: `Demo loads the owner's persisted loadout (or grants starter weapons on
first run), equips and levels a weapon, prints the loadout, and releases the
session. Scene calls go to logging stand-ins, so no game client is needed.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoDataPath, "data", "data/armory.yaml", "path to the content file")
	demoCmd.Flags().StringVar(&demoRedisAddress, "redis-address", "localhost:6379", "redis address for loadout persistence")
	demoCmd.Flags().StringVar(&demoOwnerID, "owner", "demo_player", "owner ID for the session")
	demoCmd.Flags().Int64Var(&demoXP, "xp", 150, "experience to award the equipped weapon")
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := catalog.LoadFile(demoDataPath)
	if err != nil {
		return err
	}

	curves := progression.NewCurveRegistry()
	cat := catalog.New()
	if err := data.Apply(curves, cat); err != nil {
		return err
	}

	client, err := redisclient.NewClient(demoRedisAddress, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()

	repo, err := loadoutrepo.NewRedis(&loadoutrepo.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	orchestrator, err := armoryorch.New(&armoryorch.Config{
		Catalog:     cat,
		Curves:      curves,
		Directory:   progression.NewDirectory(&progression.DirectoryConfig{Sink: headlessSink{}}),
		Models:      headlessModels{},
		Rigs:        headlessRigs{},
		LoadoutRepo: repo,
	})
	if err != nil {
		return err
	}

	var svc armory.Service = orchestrator

	loaded, err := svc.LoadLoadout(ctx, &armory.LoadLoadoutInput{OwnerID: demoOwnerID})
	if err != nil {
		return err
	}
	fmt.Printf("loaded %s: %d restored, %d skipped\n", demoOwnerID, loaded.Restored, loaded.Skipped)

	if loaded.Restored == 0 {
		for _, def := range cat.All() {
			granted, err := svc.GrantWeapon(ctx, &armory.GrantWeaponInput{
				OwnerID:      demoOwnerID,
				DefinitionID: def.ID,
			})
			if err != nil {
				return err
			}
			fmt.Printf("granted %s as %s\n", def.ID, granted.ItemID)
			if granted.Index >= 1 {
				break
			}
		}
	}

	equipped, err := svc.EquipWeapon(ctx, &armory.EquipWeaponInput{OwnerID: demoOwnerID, Index: 0})
	if err != nil {
		return err
	}
	fmt.Printf("equipped %s\n", equipped.ItemID)

	award, err := svc.AwardExperience(ctx, &armory.AwardExperienceInput{
		ItemKey: equipped.ItemID,
		Amount:  demoXP,
	})
	if err != nil {
		return err
	}
	fmt.Printf("awarded %d xp: rank %d at %d xp\n", demoXP, award.Snapshot.Current.Rank, award.Snapshot.XP)

	view, err := svc.GetLoadout(ctx, &armory.GetLoadoutInput{OwnerID: demoOwnerID})
	if err != nil {
		return err
	}
	printLoadout(view)

	released, err := svc.ReleaseLoadout(ctx, &armory.ReleaseLoadoutInput{OwnerID: demoOwnerID})
	if err != nil {
		return err
	}
	fmt.Printf("released %s: %d items saved\n", demoOwnerID, released.Saved)

	return nil
}

func printLoadout(view *armory.GetLoadoutOutput) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tITEM\tNAME\tRARITY\tLEVEL\tXP\tEQUIPPED")
	for _, row := range view.Rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d/%d\t%v\n",
			row.Index, row.ItemID, row.Name, row.Rarity, row.Level, row.XP, row.MaxXP, row.IsEquipped)
	}
	if err := w.Flush(); err != nil {
		slog.Warn("failed to flush loadout table", "error", err)
	}
}

// Headless scene stand-ins: the demo has no rendered scene, so model and
// rig calls just log what a client would do.

type headlessHandle struct {
	modelAssetID string
}

func (h headlessHandle) SetSheathed(ctx context.Context, sheathed bool) error {
	slog.InfoContext(ctx, "scene: set sheathed", "model", h.modelAssetID, "sheathed", sheathed)
	return nil
}

func (h headlessHandle) Close() error {
	slog.Info("scene: released model", "model", h.modelAssetID)
	return nil
}

type headlessModels struct{}

func (headlessModels) ResolveModel(ctx context.Context, def *entities.WeaponDefinition) (scene.Handle, error) {
	slog.InfoContext(ctx, "scene: resolved model", "model", def.ModelAssetID)
	return headlessHandle{modelAssetID: def.ModelAssetID}, nil
}

type headlessRigs struct{}

func (headlessRigs) Attach(ctx context.Context, handle scene.Handle, ownerID string) error {
	slog.InfoContext(ctx, "scene: attached to rig", "owner_id", ownerID)
	return nil
}

func (headlessRigs) Detach(ctx context.Context, handle scene.Handle) error {
	slog.InfoContext(ctx, "scene: detached from rig")
	return nil
}

type headlessSink struct{}

func (headlessSink) Publish(ctx context.Context, itemKey string, snapshot entities.ProgressionSnapshot) error {
	slog.InfoContext(ctx, "scene: progression display updated",
		"item_key", itemKey, "rank", snapshot.Current.Rank, "xp", snapshot.XP)
	return nil
}
