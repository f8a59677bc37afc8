package schema

// builtinLayouts lists every record layout of the EFD Contribuicoes file in
// the order the blocks appear. Field 0 is always REG.
var builtinLayouts = []Layout{
	{Type: "0000", Fields: []string{"REG", "COD_VER", "TIPO_ESCRIT", "IND_SIT_ESP", "NUM_REC_ANTERIOR", "DT_INI", "DT_FIN", "NOME", "CNPJ", "UF", "COD_MUN", "SUFRAMA", "IND_NAT_PJ", "IND_ATIV"}},
	{Type: "0001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "0035", Fields: []string{"REG", "COD_SCP", "DESC_SCP", "INF_COMP"}},
	{Type: "0100", Fields: []string{"REG", "NOME", "CPF", "CRC", "CNPJ", "CEP", "END", "NUM", "COMPL", "BAIRRO", "FONE", "FAX", "EMAIL", "COD_MUN"}},
	{Type: "0110", Fields: []string{"REG", "COD_TIPO_CONT", "COD_INC_TRIB", "IND_APRO_CRED", "IND_REG_CUM"}},
	{Type: "0111", Fields: []string{"REG", "REC_BRU_NCUM_TRIB_MI", "REC_BRU_NCUM_NC_MI", "REC_BRU_NCUM_EXP", "REC_BRU_CUM", "REC_BRU_TOTAL"}},
	{Type: "0120", Fields: []string{"REG", "MES_REFER", "INF_COMP"}},
	{Type: "0140", Fields: []string{"REG", "COD_EST", "NOME", "CNPJ", "UF", "IE", "COD_MUN", "IM", "SUFRAMA"}},
	{Type: "0145", Fields: []string{"REG", "COD_INC_TRIB", "VL_REC_TOT", "VL_REC_ATIV", "VL_REC_DEMAIS_ATIV"}},
	{Type: "0150", Fields: []string{"REG", "COD_PART", "NOME", "COD_PAIS", "CNPJ", "CPF", "IE", "COD_MUN", "SUFRAMA", "END", "NUM", "COMPL", "BAIRRO"}},
	{Type: "0190", Fields: []string{"REG", "UNID", "DESCR"}},
	{Type: "0200", Fields: []string{"REG", "COD_ITEM", "DESCR_ITEM", "COD_BARRA", "COD_ANT_ITEM", "UNID_INV", "TP_ITEM", "COD_NCM", "EX_IPI", "COD_GEN", "COD_LST", "ALIQ_ICMS"}},
	{Type: "0205", Fields: []string{"REG", "COD_ANT_ITEM", "DT_INI_ALT", "DT_FIM_ALT"}},
	{Type: "0206", Fields: []string{"REG", "COD_COMB"}},
	{Type: "0208", Fields: []string{"REG", "COD_TAB", "COD_GRUPO"}},
	{Type: "0400", Fields: []string{"REG", "COD_NAT", "DESCR_NAT"}},
	{Type: "0450", Fields: []string{"REG", "COD_INF", "DESCR_INF"}},
	{Type: "0500", Fields: []string{"REG", "DT_ALT", "COD_NAT_CC", "IND_CTA", "NIVEL", "COD_CTA", "NOME_CTA", "COD_CTA_REF", "CNPJ_EST"}},
	{Type: "0600", Fields: []string{"REG", "DT_ALT", "COD_CCUS", "CCUS"}},
	{Type: "0990", Fields: []string{"REG", "QTD_LIN_0"}},

	{Type: "A001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "A010", Fields: []string{"REG", "CNPJ"}},
	{Type: "A100", Fields: []string{"REG", "IND_OPER", "IND_EMIT", "COD_PART", "COD_SIT", "SER", "SUB", "NUM_DOC", "CHV_NFSE", "DT_DOC", "DT_EXE_SERV", "VL_DOC", "IND_PGTO", "VL_DESC", "VL_BC_PIS", "VL_PIS", "VL_BC_COFINS", "VL_COFINS", "VL_PIS_RET", "VL_COFINS_RET", "VL_ISS"}},
	{Type: "A110", Fields: []string{"REG", "COD_INF", "TXT_COMPL"}},
	{Type: "A111", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "A120", Fields: []string{"REG", "VL_TOT_SERV", "VL_BC_PIS", "VL_PIS_IMP", "DT_PAG_PIS", "VL_BC_COFINS", "VL_COFINS_IMP", "DT_PAG_COFINS", "LOC_EXEC_SERV", "IND_ORIG_CRED"}},
	{Type: "A170", Fields: []string{"REG", "NUM_ITEM", "COD_ITEM", "DESCR_COMPL", "VL_ITEM", "VL_DESC", "NAT_BC_CRED", "IND_ORIG_CRED", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "COD_CCUS"}},
	{Type: "A990", Fields: []string{"REG", "QTD_LIN_A"}},

	{Type: "C001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "C010", Fields: []string{"REG", "CNPJ", "IND_ESCRI"}},
	{Type: "C100", Fields: []string{"REG", "IND_OPER", "IND_EMIT", "COD_PART", "COD_MOD", "COD_SIT", "SER", "NUM_DOC", "CHV_NFE", "DT_DOC", "DT_E_S", "VL_DOC", "IND_PGTO", "VL_DESC", "VL_ABAT_NT", "VL_MERC", "IND_FRT", "VL_FRT", "VL_SEG", "VL_OUT_DA", "VL_BC_ICMS", "VL_ICMS", "VL_BC_ICMS_ST", "VL_ICMS_ST", "VL_IPI", "VL_PIS", "VL_COFINS", "VL_PIS_ST", "VL_COFINS_ST"}},
	{Type: "C110", Fields: []string{"REG", "COD_INF", "TXT_COMPL"}},
	{Type: "C111", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "C120", Fields: []string{"REG", "COD_DOC_IMP", "NUM_DOC_IMP", "CHV_DOC_IMP", "DT_REG_IMP", "NUM_ACDRAW"}},
	{Type: "C170", Fields: []string{"REG", "NUM_ITEM", "COD_ITEM", "DESCR_COMPL", "QTD", "UNID", "VL_ITEM", "VL_DESC", "IND_MOV", "CST_ICMS", "CFOP", "COD_NAT", "VL_BC_ICMS", "ALIQ_ICMS", "VL_ICMS", "VL_BC_ICMS_ST", "ALIQ_ICMS_ST", "VL_ICMS_ST", "IND_APUR", "CST_IPI", "COD_ENQ", "VL_BC_IPI", "ALIQ_IPI", "VL_IPI", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA"}},
	{Type: "C175", Fields: []string{"REG", "CFOP", "VL_OPER", "VL_DESC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA", "INFO_COMPL"}},
	{Type: "C180", Fields: []string{"REG", "COD_MOD", "DT_DOC_INI", "DT_DOC_FIN", "COD_ITEM", "COD_NCM", "EX_IPI", "VL_TOT_ITEM"}},
	{Type: "C181", Fields: []string{"REG", "CST_PIS", "CFOP", "VL_ITEM", "VL_DESC", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_CTA"}},
	{Type: "C185", Fields: []string{"REG", "CST_COFINS", "CFOP", "VL_ITEM", "VL_DESC", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA"}},
	{Type: "C188", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "C190", Fields: []string{"REG", "COD_MOD", "DT_DOC_INI", "DT_DOC_FIN", "COD_ITEM", "COD_NCM", "EX_IPI", "VL_TOT_ITEM"}},
	{Type: "C191", Fields: []string{"REG", "CNPJ_CPF_PART", "CST_PIS", "CFOP", "VL_ITEM", "VL_DESC", "NAT_BC_CRED", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_CTA"}},
	{Type: "C195", Fields: []string{"REG", "CNPJ_CPF_PART", "CST_COFINS", "CFOP", "VL_ITEM", "VL_DESC", "NAT_BC_CRED", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA"}},
	{Type: "C199", Fields: []string{"REG", "COD_DOC_IMP", "NUM_DOC_IMP", "CHV_DOC_IMP", "DT_REG_IMP", "NUM_ACDRAW"}},
	{Type: "C380", Fields: []string{"REG", "COD_MOD", "DT_DOC_INI", "DT_DOC_FIN", "NUM_DOC_INI", "NUM_DOC_FIN", "VL_DOC"}},
	{Type: "C381", Fields: []string{"REG", "CST_PIS", "COD_ITEM", "VL_ITEM", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_CTA"}},
	{Type: "C385", Fields: []string{"REG", "CST_COFINS", "COD_ITEM", "VL_ITEM", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA"}},
	{Type: "C395", Fields: []string{"REG", "COD_MOD", "COD_PART", "SER", "SUB_SER", "NUM_DOC", "DT_DOC", "VL_DOC"}},
	{Type: "C396", Fields: []string{"REG", "COD_ITEM", "VL_ITEM", "VL_DESC", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA", "COD_CCUS"}},
	{Type: "C400", Fields: []string{"REG", "COD_MOD", "ECF_MOD", "ECF_FAB", "ECF_CX"}},
	{Type: "C405", Fields: []string{"REG", "DT_DOC", "CRO", "CRZ", "NUM_COO", "GT_FIN", "VL_BRT"}},
	{Type: "C481", Fields: []string{"REG", "CST_PIS", "VL_ITEM", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_ITEM", "COD_CTA"}},
	{Type: "C485", Fields: []string{"REG", "CST_COFINS", "VL_ITEM", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_ITEM", "COD_CTA"}},
	{Type: "C489", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "C490", Fields: []string{"REG", "DT_DOC_INI", "DT_DOC_FIN", "COD_MOD", "VL_DOC", "VL_DESC", "VL_CANC", "VL_BRT"}},
	{Type: "C491", Fields: []string{"REG", "COD_ITEM", "CST_PIS", "CFOP", "VL_ITEM", "VL_DESC", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "COD_CTA"}},
	{Type: "C495", Fields: []string{"REG", "COD_ITEM", "CST_COFINS", "CFOP", "VL_ITEM", "VL_DESC", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA"}},
	{Type: "C499", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "C500", Fields: []string{"REG", "COD_PART", "COD_MOD", "COD_SIT", "SER", "SUB", "NUM_DOC", "DT_DOC", "DT_ENT", "VL_DOC", "VL_ICMS", "COD_INF", "VL_PIS", "VL_COFINS", "CHV_DOCe"}},
	{Type: "C501", Fields: []string{"REG", "CST_PIS", "VL_ITEM", "NAT_BC_CRED", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA"}},
	{Type: "C505", Fields: []string{"REG", "CST_COFINS", "VL_ITEM", "NAT_BC_CRED", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "C509", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "C600", Fields: []string{"REG", "COD_MOD", "COD_MUN", "SER", "SUB", "COD_CONS", "QTD_CONS", "DT_DOC", "VL_DOC", "VL_DESC", "VL_FORN", "VL_SERV_NT", "VL_TERC", "VL_PIS_CUM", "VL_COFINS_CUM"}},
	{Type: "C601", Fields: []string{"REG", "CST_PIS", "VL_ITEM", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA"}},
	{Type: "C605", Fields: []string{"REG", "CST_COFINS", "VL_ITEM", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "C609", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "C800", Fields: []string{"REG", "COD_MOD", "COD_SIT", "NUM_CFE", "DT_DOC", "VL_CFE", "VL_PIS", "VL_COFINS", "VL_PIS_ST", "VL_COFINS_ST", "VL_DESC", "CHV_CFE"}},
	{Type: "C810", Fields: []string{"REG", "CFOP", "VL_ITEM", "COD_ITEM", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "C820", Fields: []string{"REG", "CFOP", "VL_ITEM", "COD_ITEM", "CST_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA"}},
	{Type: "C830", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "C860", Fields: []string{"REG", "COD_MOD", "NR_SAT", "DT_DOC", "DOC_INI", "DOC_FIM"}},
	{Type: "C870", Fields: []string{"REG", "COD_ITEM", "CFOP", "VL_ITEM", "VL_DESC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "C880", Fields: []string{"REG", "COD_ITEM", "CFOP", "VL_ITEM", "VL_DESC", "CST_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA"}},
	{Type: "C890", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "C990", Fields: []string{"REG", "QTD_LIN_C"}},

	{Type: "D001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "D010", Fields: []string{"REG", "CNPJ"}},
	{Type: "D100", Fields: []string{"REG", "IND_OPER", "IND_EMIT", "COD_PART", "COD_MOD", "COD_SIT", "SER", "SUB", "NUM_DOC", "CHV_CTE", "DT_DOC", "DT_A_P", "TP_CT-E", "CHV_CTE_REF", "VL_DOC", "VL_DESC", "IND_FRT", "VL_SERV", "VL_BC_ICMS", "VL_ICMS", "VL_NT", "COD_INF", "COD_CTA"}},
	{Type: "D101", Fields: []string{"REG", "IND_NAT_FRT", "VL_ITEM", "CST_PIS", "NAT_BC_CRED", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA"}},
	{Type: "D105", Fields: []string{"REG", "IND_NAT_FRT", "VL_ITEM", "CST_COFINS", "NAT_BC_CRED", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "D111", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "D200", Fields: []string{"REG", "COD_MOD", "SER", "NUM_DOC_INI", "NUM_DOC_FIN", "DT_DOC", "DT_EXE_SERV", "VL_DOC", "VL_DESC", "VL_CANC", "VL_CONT_PIS", "VL_CONT_COFINS"}},
	{Type: "D201", Fields: []string{"REG", "CST_PIS", "VL_ITEM", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA"}},
	{Type: "D205", Fields: []string{"REG", "CST_COFINS", "VL_ITEM", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "D209", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "D300", Fields: []string{"REG", "COD_MOD", "SER", "NUM_DOC_INI", "NUM_DOC_FIN", "CFOP", "DT_DOC", "VL_DOC", "VL_DESC", "VL_CANC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "D309", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "D350", Fields: []string{"REG", "COD_MOD", "ECF_MOD", "ECF_FAB", "ECF_CX", "DT_DOC", "CRO", "CRZ", "NUM_COO_INI", "NUM_COO_FIN", "VL_BRT", "VL_ISS", "VL_PIS", "VL_COFINS", "VL_ISENTOS", "VL_NAO_TRIB", "VL_CANC", "VL_DESC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS_APUR", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS_APUR", "COD_CTA"}},
	{Type: "D359", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "D500", Fields: []string{"REG", "IND_OPER", "IND_EMIT", "COD_PART", "COD_MOD", "COD_SIT", "SER", "SUB", "NUM_DOC", "DT_DOC", "DT_A_P", "VL_DOC", "VL_DESC", "VL_SERV", "VL_SERV_NT", "VL_TERC", "VL_DA", "VL_BC_ICMS", "VL_ICMS", "COD_INF", "VL_PIS", "VL_COFINS"}},
	{Type: "D501", Fields: []string{"REG", "CST_PIS", "VL_ITEM", "NAT_BC_CRED", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA"}},
	{Type: "D505", Fields: []string{"REG", "CST_COFINS", "VL_ITEM", "NAT_BC_CRED", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "D509", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "D600", Fields: []string{"REG", "COD_MOD", "COD_MUN", "SER", "SUB", "IND_REC", "QTD_BILHETES", "DT_DOC_INI", "DT_DOC_FIN", "VL_REC", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "VL_ISS", "VL_ICMS", "VL_OUT_DA", "VL_COSEMS", "VL_COFEMS"}},
	{Type: "D601", Fields: []string{"REG", "COD_CLASS", "VL_ITEM", "VL_DESC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA"}},
	{Type: "D605", Fields: []string{"REG", "COD_CLASS", "VL_ITEM", "VL_DESC", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "D609", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "D990", Fields: []string{"REG", "QTD_LIN_D"}},

	{Type: "F001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "F010", Fields: []string{"REG", "CNPJ"}},
	{Type: "F100", Fields: []string{"REG", "IND_OPER", "COD_PART", "COD_ITEM", "DT_OPER", "VL_OPER", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "NAT_BC_CRED", "IND_ORIG_CRED", "COD_CTA", "COD_CCUS", "DESC_DOC_OPER"}},
	{Type: "F111", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "F120", Fields: []string{"REG", "NAT_BC_CRED", "IDENT_BEM_IMOB", "IND_ORIG_CRED", "IND_UTIL_BEM_IMOB", "VL_OPER_DEP", "VL_EXC_BC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "COD_CCUS", "DESCR_BEM"}},
	{Type: "F129", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "F130", Fields: []string{"REG", "NAT_BC_CRED", "IDENT_BEM_IMOB", "IND_ORIG_CRED", "IND_UTIL_BEM_IMOB", "MES_AQUIS", "VL_AQUIS_BEM", "VL_EXC_BC", "IND_NR_PARC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "COD_CCUS", "DESCR_BEM"}},
	{Type: "F139", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "F150", Fields: []string{"REG", "NAT_BC_CRED", "VL_TOT_EST", "VL_EXC_BC_EST", "VL_BC_EST", "VL_BC_EST_MES", "CST_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "ALIQ_COFINS", "VL_COFINS", "DESC_EST", "COD_CTA"}},
	{Type: "F200", Fields: []string{"REG", "UNID_IMOB", "TP_UNID_IMOB", "IDENT_EMP", "DESC_UNID_IMOB", "NUM_CONT", "CPF_CNPJ_ADQU", "DT_OPER_COMP", "VL_UNID_IMOB_AT", "VL_TOT_REC", "VL_REC_ACUM", "VL_COMP_AJUS_UNID", "COD_ITEM", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "IND_NAT_EMP", "INF_COMPL"}},
	{Type: "F205", Fields: []string{"REG", "COD_UNID_IMOB", "VL_CUSTO_INC_MES", "VL_CUSTO_INC_ACUM", "VL_EXC_BC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "F210", Fields: []string{"REG", "COD_UNID_IMOB", "VL_CUSTO_ORC", "VL_CUSTO_ORC_PER", "VL_EXC_BC", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA"}},
	{Type: "F211", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "F500", Fields: []string{"REG", "VL_REC_CAIXA", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_MOD", "CFOP", "COD_CTA", "INFO_COMPL"}},
	{Type: "F509", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "F510", Fields: []string{"REG", "VL_REC_CAIXA", "CST_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_MOD", "CFOP", "COD_CTA", "INFO_COMPL"}},
	{Type: "F519", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "F525", Fields: []string{"REG", "DT_REC", "IND_REC_COMP", "VL_REC_COMP", "COD_CTA", "INFO_COMPL"}},
	{Type: "F550", Fields: []string{"REG", "VL_REC_COMP", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_MOD", "CFOP", "COD_CTA", "INFO_COMPL"}},
	{Type: "F559", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "F560", Fields: []string{"REG", "VL_REC_COMP", "CST_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_MOD", "CFOP", "COD_CTA", "INFO_COMPL"}},
	{Type: "F569", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "F600", Fields: []string{"REG", "IND_NAT_RET", "DT_RET", "VL_BC_RET", "VL_RET", "COD_REC", "IND_NAT_REC", "CNPJ", "VL_RET_PIS", "VL_RET_COFINS", "IND_DEC"}},
	{Type: "F700", Fields: []string{"REG", "IND_ORI_DED", "IND_NAT_DED", "VL_DED_PIS", "VL_DED_COFINS", "VL_BC_OPER", "CNPJ", "INF_COMPL"}},
	{Type: "F800", Fields: []string{"REG", "NAT_CRED_SUC", "DT_SUCESS", "CNPJ_SUCED", "PER_APU_CRED_ORIG", "VL_CRED_PIS", "VL_CRED_COFINS", "PERC_FUS_CIS_INCORP"}},
	{Type: "F990", Fields: []string{"REG", "QTD_LIN_F"}},

	{Type: "I001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "I010", Fields: []string{"REG", "CNPJ", "IND_ATIV", "INF_COMP"}},
	{Type: "I100", Fields: []string{"REG", "VL_REC", "CST_PIS_COFINS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "VL_EXC_BC", "VL_AJUS_BC", "INFO_COMPL"}},
	{Type: "I199", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "I200", Fields: []string{"REG", "NUM_CAMPO", "COD_DET", "DET_VALOR", "COD_CTA", "INFO_COMPL"}},
	{Type: "I299", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "I300", Fields: []string{"REG", "COD_COMP", "DET_VALOR", "COD_CTA", "INFO_COMPL"}},
	{Type: "I399", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "I990", Fields: []string{"REG", "QTD_LIN_I"}},

	{Type: "M001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "M100", Fields: []string{"REG", "COD_CRED", "IND_CRED_ORI", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_CRED", "VL_AJUS_ACRES", "VL_AJUS_REDUC", "VL_CRED_DIF", "VL_CRED_DISP", "IND_DESC_CRED", "VL_CRED_DESC", "SLD_CRED"}},
	{Type: "M105", Fields: []string{"REG", "NAT_BC_CRED", "CST_PIS", "VL_BC_PIS_TOT", "VL_BC_PIS_CUM", "VL_BC_PIS_NC", "VL_BC_PIS", "QUANT_BC_PIS_TOT", "QUANT_BC_PIS", "DESC_CRED"}},
	{Type: "M110", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ", "DT_REF"}},
	{Type: "M115", Fields: []string{"REG", "DET_VALOR_AJ", "CST_PIS", "DET_BC_CRED", "DET_ALIQ", "DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL"}},
	{Type: "M200", Fields: []string{"REG", "VL_TOT_CONT_NC_PER", "VL_TOT_CRED_DESC", "VL_TOT_CRED_DESC_ANT", "VL_TOT_CONT_NC_DEV", "VL_RET_NC", "VL_OUT_DED_NC", "VL_CONT_NC_REC", "VL_TOT_CONT_CUM_PER", "VL_RET_CUM", "VL_OUT_DED_CUM", "VL_CONT_CUM_REC", "VL_TOT_CONT_REC"}},
	{Type: "M205", Fields: []string{"REG", "NUM_CAMPO", "COD_REC", "VL_DEBITO"}},
	{Type: "M210", Fields: []string{"REG", "COD_CONT", "VL_REC_BRT", "VL_BC_CONT", "VL_AJUS_ACRES_BC_PIS", "VL_AJUS_REDUC_BC_PIS", "VL_BC_CONT_AJUS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_CONT_APUR", "VL_AJUS_ACRES", "VL_AJUS_REDUC", "VL_CONT_DIFER", "VL_CONT_DIFER_ANT", "VL_CONT_PER"}},
	{Type: "M211", Fields: []string{"REG", "IND_TIP_COOP", "VL_BC_CONT_ANT_EXC_COOP", "VL_EXC_COOP_GER", "VL_EXC_ESP_COOP", "VL_BC_CONT_COOP"}},
	{Type: "M215", Fields: []string{"REG", "IND_AJ_BC", "VL_AJ_BC", "COD_AJ_BC", "NUM_DOC", "DESCR_AJ_BC", "DT_REF", "COD_CTA", "CNPJ", "INFO_COMPL"}},
	{Type: "M220", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ", "DT_REF"}},
	{Type: "M225", Fields: []string{"REG", "DET_VALOR_AJ", "CST_PIS", "DET_BC_CRED", "DET_ALIQ", "DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL"}},
	{Type: "M230", Fields: []string{"REG", "CNPJ", "VL_VEND", "VL_CONT_DIFER", "VL_CRED_DIFER_PIS", "PER_APUR", "DT_RECEB"}},
	{Type: "M350", Fields: []string{"REG", "VL_TOT_FOL", "VL_EXC_BC", "VL_TOT_BC", "ALIQ_PIS_FOL", "VL_TOT_CONT_FOL"}},
	{Type: "M400", Fields: []string{"REG", "CST_PIS", "VL_TOT_REC", "COD_CTA", "DESC_COMPL"}},
	{Type: "M410", Fields: []string{"REG", "NAT_REC", "VL_REC", "COD_CTA", "DESC_COMPL"}},
	{Type: "M500", Fields: []string{"REG", "COD_CRED", "IND_CRED_ORI", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_CRED", "VL_AJUS_ACRES", "VL_AJUS_REDUC", "VL_CRED_DIFER", "VL_CRED_DISP", "IND_DESC_CRED", "VL_CRED_DESC", "SLD_CRED"}},
	{Type: "M505", Fields: []string{"REG", "NAT_BC_CRED", "CST_COFINS", "VL_BC_COFINS_TOT", "VL_BC_COFINS_CUM", "VL_BC_COFINS_NC", "VL_BC_COFINS", "QUANT_BC_COFINS_TOT", "QUANT_BC_COFINS", "DESC_CRED"}},
	{Type: "M510", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ", "DT_REF"}},
	{Type: "M515", Fields: []string{"REG", "DET_VALOR_AJ", "CST_COFINS", "DET_BC_CRED", "DET_ALIQ", "DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL"}},
	{Type: "M600", Fields: []string{"REG", "VL_TOT_CONT_NC_PER", "VL_TOT_CRED_DESC", "VL_TOT_CRED_DESC_ANT", "VL_TOT_CONT_NC_DEV", "VL_RET_NC", "VL_OUT_DED_NC", "VL_CONT_NC_REC", "VL_TOT_CONT_CUM_PER", "VL_RET_CUM", "VL_OUT_DED_CUM", "VL_CONT_CUM_REC", "VL_TOT_CONT_REC"}},
	{Type: "M605", Fields: []string{"REG", "NUM_CAMPO", "COD_REC", "VL_DEBITO"}},
	{Type: "M610", Fields: []string{"REG", "COD_CONT", "VL_REC_BRT", "VL_BC_CONT", "VL_AJUS_ACRES_BC_COFINS", "VL_AJUS_REDUC_BC_COFINS", "VL_BC_CONT_AJUS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_CONT_APUR", "VL_AJUS_ACRES", "VL_AJUS_REDUC", "VL_CONT_DIFER", "VL_CONT_DIFER_ANT", "VL_CONT_PER"}},
	{Type: "M611", Fields: []string{"REG", "IND_TIP_COOP", "VL_BC_CONT_ANT_EXC_COOP", "VL_EXC_COOP_GER", "VL_EXC_ESP_COOP", "VL_BC_CONT"}},
	{Type: "M615", Fields: []string{"REG", "IND_AJ_BC", "VL_AJ_BC", "COD_AJ_BC", "NUM_DOC", "DESCR_AJ_BC", "DT_REF", "COD_CTA", "CNPJ", "INFO_COMPL"}},
	{Type: "M620", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ", "DT_REF"}},
	{Type: "M625", Fields: []string{"REG", "DET_VALOR_AJ", "CST_COFINS", "DET_BC_CRED", "DET_ALIQ", "DT_OPER_AJ", "DESC_AJ", "COD_CTA", "INFO_COMPL"}},
	{Type: "M630", Fields: []string{"REG", "CNPJ", "VL_VEND", "VL_CONT_DIFER", "VL_CRED_DIFER_COFINS", "PER_APUR", "DT_RECEB"}},
	{Type: "M700", Fields: []string{"REG", "COD_CONT", "VL_CONT_APUR_DIFER", "NAT_CRED_DESC", "VL_CRED_DESC", "PER_APUR", "DT_RECEB"}},
	{Type: "M800", Fields: []string{"REG", "CST_COFINS", "VL_TOT_REC", "COD_CTA", "DESC_COMPL"}},
	{Type: "M810", Fields: []string{"REG", "NAT_REC", "VL_REC", "COD_CTA", "DESC_COMPL"}},
	{Type: "M990", Fields: []string{"REG", "QTD_LIN_M"}},

	{Type: "P001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "P010", Fields: []string{"REG", "CNPJ"}},
	{Type: "P100", Fields: []string{"REG", "DT_INI", "DT_FIN", "VL_REC_BRT", "COD_ATIV_ECON", "ALIQ_CONT", "VL_CONT_APUR", "VL_AJ_ACRES", "VL_AJ_REDUC", "VL_CONT_DIF", "VL_CONT_DIF_ANT", "VL_CONT_RET", "VL_COMP_PR", "VL_CONT_OUT", "VL_SLD_CONT", "COD_CTA"}},
	{Type: "P110", Fields: []string{"REG", "NUM_CAMPO", "COD_DET", "DET_VALOR"}},
	{Type: "P199", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "P200", Fields: []string{"REG", "PER_REF", "VL_TOT_CONT_APU", "VL_AJ_ACRES", "VL_AJ_REDUC", "VL_DED_AJ_DIF", "COD_REC"}},
	{Type: "P210", Fields: []string{"REG", "IND_AJ", "VL_AJ", "COD_AJ", "NUM_DOC", "DESCR_AJ", "DT_REF"}},
	{Type: "P990", Fields: []string{"REG", "QTD_LIN_P"}},

	{Type: "1001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "1010", Fields: []string{"REG", "NUM_PROC", "ID_SEC_JUD", "ID_VARA", "IND_NAT_ACAO", "DESC_DEC_JUD", "DT_DEC_JUD"}},
	{Type: "1011", Fields: []string{"REG", "REG_REF", "CHAVE_DOC", "COD_PART", "COD_ITEM", "DT_OPER", "VL_OPER", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "QUANT_BC_PIS", "ALIQ_PIS_QUANT", "VL_PIS", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "QUANT_BC_COFINS", "ALIQ_COFINS_QUANT", "VL_COFINS", "COD_CTA", "COD_CCUS", "DESC_DOC_OPER"}},
	{Type: "1020", Fields: []string{"REG", "NUM_PROC", "IND_NAT_ACAO", "DT_DEC_ADM"}},
	{Type: "1050", Fields: []string{"REG", "DT_REF", "IND_AJ_BC", "CNPJ", "VL_AJ_TOT", "VL_AJ_CST01", "VL_AJ_CST02", "VL_AJ_CST03", "VL_AJ_CST04", "VL_AJ_CST05", "VL_AJ_CST06", "VL_AJ_CST07", "VL_AJ_CST08", "VL_AJ_CST09", "VL_AJ_CST49", "VL_AJ_CST99", "IND_CONT", "NUM_REC", "INFO_COMPL"}},
	{Type: "1100", Fields: []string{"REG", "PER_APU_CRED", "ORIG_CRED", "CNPJ_SUC", "COD_CRED", "VL_CRED_APU", "VL_CRED_EXT_APU", "VL_CRED_TOT", "VL_CRED_DESC_ANT", "VL_CRED_DESC_PER", "VL_CRED_TRANSF", "VL_CRED_OUT", "SLD_CRED"}},
	{Type: "1101", Fields: []string{"REG", "COD_PART", "COD_ITEM", "COD_MOD", "SER", "SUB_SER", "NUM_DOC", "DT_OPER", "CHV_NFE", "VL_OPER", "CFOP", "NAT_BC_CRED", "IND_ORIG_CRED", "CST_PIS", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA", "COD_CCUS", "DESC_COMPL", "PER_ESCRIT", "CNPJ"}},
	{Type: "1102", Fields: []string{"REG", "VL_CRED_PIS_TRIB_MI", "VL_CRED_PIS_NT_MI", "VL_CRED_PIS_EXP"}},
	{Type: "1200", Fields: []string{"REG", "PER_APUR_ANT", "NAT_CONT_REC", "VL_CONT_APUR", "VL_CRED_PIS_DESC", "VL_OUT_DED_PIS", "VL_PIS_PAG", "VL_CONT_EXT", "VL_MUL", "VL_JUR", "DT_RECOL"}},
	{Type: "1210", Fields: []string{"REG", "CNPJ", "CST_PIS", "COD_PART", "DT_OPER", "VL_OPER", "VL_BC_PIS", "ALIQ_PIS", "VL_PIS", "COD_CTA", "DESC_COMPL"}},
	{Type: "1220", Fields: []string{"REG", "PER_APUR_CRED", "ORIG_CRED", "COD_CRED", "VL_CRED_DESC"}},
	{Type: "1300", Fields: []string{"REG", "IND_NAT_RET", "PR_REC_RET", "VL_RET_APU", "VL_RET_DED", "VL_RET_PER", "VL_RET_DCOMP", "SLD_RET"}},
	{Type: "1500", Fields: []string{"REG", "PER_APU_CRED", "ORIG_CRED", "CNPJ_SUC", "COD_CRED", "VL_CRED_APU", "VL_CRED_EXT_APU", "VL_CRED_TOT", "VL_CRED_DESC_ANT", "VL_CRED_DESC_PER", "VL_CRED_TRANSF", "VL_CRED_OUT", "SLD_CRED"}},
	{Type: "1501", Fields: []string{"REG", "COD_PART", "COD_ITEM", "COD_MOD", "SER", "SUB_SER", "NUM_DOC", "DT_OPER", "CHV_NFE", "VL_OPER", "CFOP", "NAT_BC_CRED", "IND_ORIG_CRED", "CST_COFINS", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "COD_CCUS", "DESC_COMPL", "PER_ESCRIT", "CNPJ"}},
	{Type: "1502", Fields: []string{"REG", "VL_CRED_COFINS_TRIB_MI", "VL_CRED_COFINS_NT_MI", "VL_CRED_COFINS_EXP"}},
	{Type: "1600", Fields: []string{"REG", "PER_APUR_ANT", "NAT_CONT_REC", "VL_CONT_APUR", "VL_CRED_COFINS_DESC", "VL_OUT_DED_COFINS", "VL_COFINS_PAG", "VL_CONT_EXT", "VL_MUL", "VL_JUR", "DT_RECOL"}},
	{Type: "1610", Fields: []string{"REG", "CNPJ", "CST_COFINS", "COD_PART", "DT_OPER", "VL_OPER", "VL_BC_COFINS", "ALIQ_COFINS", "VL_COFINS", "COD_CTA", "DESC_COMPL"}},
	{Type: "1620", Fields: []string{"REG", "PER_APU_CRED", "ORIG_CRED", "COD_CRED", "VL_CRED_DESC"}},
	{Type: "1700", Fields: []string{"REG", "IND_NAT_RET", "PR_REC_RET", "VL_RET_APU", "VL_RET_DED", "VL_RET_PER", "VL_RET_DCOMP", "SLD_RET"}},
	{Type: "1800", Fields: []string{"REG", "INC_IMOB", "REC_RECEB_RET", "REC_FIN_RET", "BC_RET", "ALIQ_RET", "VL_REC_UNI", "DT_REC_UNI", "COD_REC"}},
	{Type: "1809", Fields: []string{"REG", "NUM_PROC", "IND_PROC"}},
	{Type: "1900", Fields: []string{"REG", "CNPJ", "COD_MOD", "SER", "SUB", "COD_SIT", "VL_DOC", "QTD_DOC", "CST_PIS", "CST_COFINS", "CFOP", "INFO_COMPL", "COD_CTA"}},
	{Type: "1990", Fields: []string{"REG", "QTD_LIN_1"}},

	{Type: "9001", Fields: []string{"REG", "IND_MOV"}},
	{Type: "9900", Fields: []string{"REG", "REG_BLC", "QTD_REG_BLC"}},
	{Type: "9990", Fields: []string{"REG", "QTD_LIN_9"}},
	{Type: "9999", Fields: []string{"REG", "QTD_LIN"}},
}
