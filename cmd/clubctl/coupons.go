package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ClubBookingService/internal/domain"
	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons/models"
)

func couponsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coupons",
		Short: "Manage the coupon catalog",
	}
	cmd.AddCommand(couponsListCmd())
	cmd.AddCommand(couponsCreateCmd())
	cmd.AddCommand(couponsDeactivateCmd())
	return cmd
}

func couponsListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List coupons usable right now (--all for the whole catalog)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openCoupons()
			if err != nil {
				return err
			}
			defer closeFn()

			ctx := context.Background()
			var resp *models.CouponListResponse
			if all {
				resp, err = svc.List(ctx, operator)
			} else {
				resp, err = svc.ListUsable(ctx)
			}
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(resp.Coupons)
			}
			if len(resp.Coupons) == 0 {
				fmt.Println("No coupons found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCODE\tTYPE\tVALUE\tEXPIRY\tACTIVE")
			for _, c := range resp.Coupons {
				expiry := "-"
				if c.Expiry != nil {
					expiry = c.Expiry.Format(time.RFC3339)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%t\n", c.ID, c.Code, c.DiscountType, c.Value, expiry, c.IsActive)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive and expired coupons")
	return cmd
}

func couponsCreateCmd() *cobra.Command {
	var (
		req    models.CouponRequest
		expiry string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a coupon",
		RunE: func(cmd *cobra.Command, args []string) error {
			if expiry != "" {
				req.Expiry = &expiry
			}

			svc, closeFn, err := openCoupons()
			if err != nil {
				return err
			}
			defer closeFn()

			created, err := svc.Create(context.Background(), &req, operator)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(created)
			}
			fmt.Printf("Created coupon %s (id=%d)\n", created.Code, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Code, "code", "", "Coupon code")
	cmd.Flags().StringVar(&req.DiscountType, "type", string(domain.DiscountPercentage), "Discount type: percentage or fixed")
	cmd.Flags().Float64Var(&req.Value, "value", 0, "Discount value (percent or amount)")
	cmd.Flags().StringVar(&expiry, "expiry", "", "Expiry date YYYY-MM-DD or RFC3339")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func couponsDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <id>",
		Short: "Deactivate a coupon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid coupon id %q", args[0])
			}

			svc, closeFn, err := openCoupons()
			if err != nil {
				return err
			}
			defer closeFn()

			if err := svc.Deactivate(context.Background(), id, operator); err != nil {
				return err
			}
			fmt.Printf("Coupon id=%d deactivated\n", id)
			return nil
		},
	}
}
