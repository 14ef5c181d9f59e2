package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/actor"
	"github.com/cory-johannsen/actorcore/internal/game/inventory"
	"github.com/cory-johannsen/actorcore/migrations"
)

// run executes actorctl with args, writing command output to out.
func run(args []string, out io.Writer) error {
	root, a := newRootCmd(out)
	defer a.close()
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(out io.Writer) (*cobra.Command, *app) {
	a := &app{out: out}
	root := &cobra.Command{
		Use:           "actorctl",
		Short:         "Build actors from content and inspect their derived totals",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.configPath, "config", "configs/dev.yaml", "path to configuration file")

	root.AddCommand(
		newListCmd(a),
		newSheetCmd(a),
		newEquipCmd(a),
		newLevelUpCmd(a),
		newEnemyCmd(a),
		newRosterCmd(a),
	)
	return root, a
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the loaded character and enemy ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printJSON(map[string][]uint32{
				"characters": a.lib.CharacterIDs(),
				"enemies":    a.lib.EnemyIDs(),
			})
		},
	}
}

func newSheetCmd(a *app) *cobra.Command {
	var fromRoster, cache bool
	cmd := &cobra.Command{
		Use:   "sheet <character-id>",
		Short: "Print a character's derived sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.character(cmd.Context(), id, fromRoster)
			if err != nil {
				return err
			}
			sheet := c.Sheet()
			if cache {
				if err := a.publish(cmd.Context(), sheet); err != nil {
					return err
				}
			}
			return a.printJSON(sheet)
		},
	}
	cmd.Flags().BoolVar(&fromRoster, "roster", false, "restore the character from the roster instead of its template")
	cmd.Flags().BoolVar(&cache, "cache", false, "publish the sheet to the redis sheet cache")
	return cmd
}

// equipFlags holds one object id per slot; -1 leaves the slot alone and 0 empties it.
type equipFlags struct {
	weapon int64
	armor  [inventory.PositionCount]int64
}

func newEquipCmd(a *app) *cobra.Command {
	var (
		f          equipFlags
		fromRoster bool
		save       bool
	)
	cmd := &cobra.Command{
		Use:   "equip <character-id>",
		Short: "Change a character's equipment and print the resulting sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.character(cmd.Context(), id, fromRoster)
			if err != nil {
				return err
			}
			if err := applyEquipment(c, a.lib.Items, f); err != nil {
				return err
			}
			if save {
				if err := a.save(cmd.Context(), c); err != nil {
					return err
				}
			}
			return a.printJSON(c.Sheet())
		},
	}
	cmd.Flags().Int64Var(&f.weapon, "weapon", -1, "weapon id (0 unequips)")
	cmd.Flags().Int64Var(&f.armor[inventory.PositionHead], "head", -1, "head armor id (0 unequips)")
	cmd.Flags().Int64Var(&f.armor[inventory.PositionTorso], "torso", -1, "torso armor id (0 unequips)")
	cmd.Flags().Int64Var(&f.armor[inventory.PositionArms], "arms", -1, "arm armor id (0 unequips)")
	cmd.Flags().Int64Var(&f.armor[inventory.PositionLegs], "legs", -1, "leg armor id (0 unequips)")
	cmd.Flags().BoolVar(&fromRoster, "roster", false, "restore the character from the roster instead of its template")
	cmd.Flags().BoolVar(&save, "save", false, "save the resulting state to the roster")
	return cmd
}

func applyEquipment(c *actor.Character, items *inventory.Registry, f equipFlags) error {
	switch {
	case f.weapon == 0:
		c.UnequipWeapon()
	case f.weapon > 0:
		def, ok := items.Weapon(uint32(f.weapon))
		if !ok {
			return fmt.Errorf("unknown weapon %d", f.weapon)
		}
		c.EquipWeapon(inventory.NewWeapon(def))
	}
	for pos, id := range f.armor {
		switch {
		case id == 0:
			c.UnequipArmor(pos)
		case id > 0:
			def, ok := items.Armor(uint32(id))
			if !ok {
				return fmt.Errorf("unknown armor %d", id)
			}
			if def.Slot.Position() != pos {
				return fmt.Errorf("armor %d is %s armor", id, def.Slot.DisplayName())
			}
			c.EquipArmor(inventory.NewArmor(def), pos)
		}
	}
	return nil
}

// levelUpResult is printed by the levelup command.
type levelUpResult struct {
	LevelsGained uint32         `json:"levels_gained"`
	Growth       []actor.Growth `json:"growth"`
	NewSkills    []uint32       `json:"new_skills"`
	Sheet        actor.Sheet    `json:"sheet"`
}

func newLevelUpCmd(a *app) *cobra.Command {
	var (
		xp         uint32
		fromRoster bool
		save       bool
	)
	cmd := &cobra.Command{
		Use:   "levelup <character-id>",
		Short: "Award experience and apply every resulting level-up",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.character(cmd.Context(), id, fromRoster)
			if err != nil {
				return err
			}
			res := levelUpResult{Growth: []actor.Growth{}, NewSkills: []uint32{}}
			c.AddExperiencePoints(xp)
			for c.AcknowledgeGrowth() {
				res.LevelsGained++
				res.Growth = append(res.Growth, c.GrowthDeltas())
				for _, s := range c.NewSkillsLearned() {
					res.NewSkills = append(res.NewSkills, s.ID())
				}
			}
			a.logger.Info("experience awarded",
				zap.Uint32("actor_id", c.ID()),
				zap.Uint32("xp", xp),
				zap.Uint32("levels_gained", res.LevelsGained),
			)
			if save {
				if err := a.save(cmd.Context(), c); err != nil {
					return err
				}
			}
			res.Sheet = c.Sheet()
			return a.printJSON(res)
		},
	}
	cmd.Flags().Uint32Var(&xp, "xp", 0, "experience points to award")
	cmd.Flags().BoolVar(&fromRoster, "roster", false, "restore the character from the roster instead of its template")
	cmd.Flags().BoolVar(&save, "save", false, "save the resulting state to the roster")
	return cmd
}

// enemyResult is printed by the enemy command.
type enemyResult struct {
	Sheet  actor.Sheet        `json:"sheet"`
	Drunes uint32             `json:"drunes"`
	Drops  []inventory.Object `json:"drops"`
}

func newEnemyCmd(a *app) *cobra.Command {
	var cache bool
	cmd := &cobra.Command{
		Use:   "enemy <enemy-id>",
		Short: "Spawn an enemy, randomize its stats and roll its drops",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			e, err := a.lib.NewEnemy(id, a.deps())
			if err != nil {
				return err
			}
			e.Initialize()
			res := enemyResult{
				Sheet:  e.Sheet(),
				Drunes: e.DrunesDropped(),
				Drops:  e.DetermineDroppedObjects(),
			}
			if res.Drops == nil {
				res.Drops = []inventory.Object{}
			}
			if cache {
				if err := a.publish(cmd.Context(), res.Sheet); err != nil {
					return err
				}
			}
			return a.printJSON(res)
		},
	}
	cmd.Flags().BoolVar(&cache, "cache", false, "publish the sheet to the redis sheet cache")
	return cmd
}

func newRosterCmd(a *app) *cobra.Command {
	roster := &cobra.Command{
		Use:   "roster",
		Short: "Manage persisted character state",
	}

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the roster schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migrations.Up(a.cfg.Database.DSN()); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "roster schema is current")
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "create <character-id>",
		Short: "Store a character built from its template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.character(cmd.Context(), id, false)
			if err != nil {
				return err
			}
			if err := a.save(cmd.Context(), c); err != nil {
				return err
			}
			return a.printJSON(c.State())
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored character state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.roster(cmd.Context())
			if err != nil {
				return err
			}
			states, err := repo.List(cmd.Context())
			if err != nil {
				return err
			}
			return a.printJSON(states)
		},
	}

	del := &cobra.Command{
		Use:   "delete <character-id>",
		Short: "Remove a character from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			repo, err := a.roster(cmd.Context())
			if err != nil {
				return err
			}
			return repo.Delete(cmd.Context(), id)
		},
	}

	party := &cobra.Command{
		Use:   "party <character-id>...",
		Short: "Store several template characters as one party",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := actor.NewParty(false, a.logger)
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				c, err := a.character(cmd.Context(), id, false)
				if err != nil {
					return err
				}
				if !p.AddCharacter(c, -1) {
					return fmt.Errorf("character %d listed twice", id)
				}
			}
			repo, err := a.roster(cmd.Context())
			if err != nil {
				return err
			}
			if err := repo.SaveParty(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "saved %d characters, average level %.1f\n", p.Len(), p.AverageExperienceLevel())
			return nil
		},
	}

	roster.AddCommand(migrate, create, list, del, party)
	return roster
}
