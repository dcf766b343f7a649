package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lastochkinroman/PersonalAssistantLite/pkg/runner/finance"
)

func addMoney(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "money",
		Short: "Track income, expenses and accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMoneyAdd(cmd)
	addMoneyList(cmd)
	addMoneyAccounts(cmd)
	addMoneyBudget(cmd)

	topLevel.AddCommand(cmd)
}

func addMoneyAdd(topLevel *cobra.Command) {
	var (
		txType  string
		date    string
		account string
		note    string
		amount  float64
	)

	cmd := &cobra.Command{
		Use:   "add <amount> <category>",
		Short: "Record a transaction",
		Example: `
pa money add 1200 Еда --type expense
pa money add 85000 Зарплата --type income --account default
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires an amount and a category")
			}
			parsed, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.New("amount must be a number")
			}
			amount = parsed
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("money")
			if err != nil {
				return err
			}
			a := finance.TxAdd{
				Date:     date,
				Type:     txType,
				Amount:   amount,
				Category: strings.Join(args[1:], " "),
				Account:  account,
				Note:     note,
				Session:  s,
			}
			return a.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "Transaction type: income or expense.")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVarP(&account, "account", "a", "", "Account id or name. Defaults to the first account.")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Free-form note.")

	topLevel.AddCommand(cmd)
}

func addMoneyList(topLevel *cobra.Command) {
	var (
		date  string
		month string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("money")
			if err != nil {
				return err
			}
			l := finance.TxList{Date: date, Month: month, Session: s}
			return l.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Only transactions on this date.")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Only transactions in this month, YYYY-MM.")

	topLevel.AddCommand(cmd)
}

func addMoneyAccounts(topLevel *cobra.Command) {
	var (
		balance float64
		exclude bool
	)

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Show accounts with computed balances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("money")
			if err != nil {
				return err
			}
			a := finance.Accounts{Session: s}
			return a.Do(context.Background())
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an account",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open("money")
			if err != nil {
				return err
			}
			a := finance.AccountAdd{
				Name:           strings.Join(args, " "),
				Balance:        balance,
				ExcludeInTotal: exclude,
				Session:        s,
			}
			return a.Do(context.Background())
		},
	}
	add.Flags().Float64VarP(&balance, "balance", "b", 0, "Opening balance.")
	add.Flags().BoolVar(&exclude, "exclude", false, "Exclude from the total balance.")
	cmd.AddCommand(add)

	topLevel.AddCommand(cmd)
}

func addMoneyBudget(topLevel *cobra.Command) {
	var (
		set   float64
		month string
	)

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Show or set the monthly budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open("money")
			if err != nil {
				return err
			}
			b := finance.Budget{Month: month, Session: s}
			if cmd.Flags().Changed("set") {
				b.Set = &set
			}
			return b.Do(context.Background())
		},
	}

	cmd.Flags().Float64Var(&set, "set", 0, "Set the monthly budget.")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to report, YYYY-MM. Defaults to the current month.")

	topLevel.AddCommand(cmd)
}
