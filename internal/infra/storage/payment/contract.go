package payment

import "github.com/m04kA/SMC-ClubBookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
