package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ClubBookingService/internal/service/coupons/models"
)

func priceCmd() *cobra.Command {
	var req models.PreviewRequest

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Preview the final amount for a base price and coupon code",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openCoupons()
			if err != nil {
				return err
			}
			defer closeFn()

			preview, err := svc.Preview(context.Background(), &req)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(preview)
			}
			fmt.Printf("Base:     %.2f\n", preview.BasePrice)
			fmt.Printf("Discount: %.2f\n", preview.Discount)
			fmt.Printf("Final:    %.2f\n", preview.FinalAmount)
			fmt.Println(preview.Message)
			return nil
		},
	}

	cmd.Flags().Float64Var(&req.BasePrice, "base", 0, "Base price")
	cmd.Flags().StringVar(&req.Code, "code", "", "Coupon code")
	_ = cmd.MarkFlagRequired("base")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}
