package dto

// ErrorResponse cuerpo de error HTTP. El código preserva la razón de negocio
// tal cual (VALIDATION, SAME_ACCOUNT, INSUFFICIENT_CAPITAL, ...) para que el
// caller nunca reciba un fallo colapsado en genérico.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
