// file: internals/features/fees/service/midtrans.go
package service

import (
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	feeModel "feedesk_backend/internals/features/fees/model"
)

var SnapClient snap.Client

// InitMidtrans initializes the Snap client with the gateway server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// FeeOrderID builds the gateway order id for one fee record.
func FeeOrderID(fee feeModel.FeeRecord) string {
	return "FEE-" + fee.FeeRecordID.String()
}

// GenerateFeeSnapToken creates a Snap transaction for one unpaid monthly fee.
// The admin shows the resulting QR to the guardian; settlement comes back via
// the payment webhook.
func GenerateFeeSnapToken(fee feeModel.FeeRecord, studentName string) (string, error) {
	if fee.FeeRecordStatus == feeModel.FeeStatusPaid {
		return "", fmt.Errorf("fee %s is already paid", fee.FeeRecordID)
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  FeeOrderID(fee),
			GrossAmt: int64(fee.FeeRecordAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: studentName,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
