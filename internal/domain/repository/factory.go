package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Categories() CategoryRepository
	Accounts() AccountRepository
	Orders() OrderRepository
	Balances() BalanceRepository
	Deposits() DepositRepository
}
