package models

// Brand is a client brand as shown on the dashboard.
type Brand struct {
	ID        string `json:"id"`
	Name      string `json:"브랜드명"`
	Status    string `json:"상태"`
	Email     string `json:"이메일"`
	Phone     string `json:"전화번호"`
	Industry  string `json:"업종"`
	Channel   string `json:"유입경로"`
	Contact   string `json:"브랜드담당자"`
	Account   string `json:"계좌정보"`
	Completed bool   `json:"입력완료"`
	Archived  bool   `json:"archived,omitempty"`
}

// BrandInput is a create or update request body. Unset fields are left
// untouched on update.
type BrandInput struct {
	Name     Optional[string] `json:"브랜드명"`
	Status   Optional[string] `json:"상태"`
	Email    Optional[string] `json:"이메일"`
	Phone    Optional[string] `json:"전화번호"`
	Industry Optional[string] `json:"업종"`
	Channel  Optional[string] `json:"유입경로"`
	Contact  Optional[string] `json:"브랜드담당자"`
	Account  Optional[string] `json:"계좌정보"`
}
